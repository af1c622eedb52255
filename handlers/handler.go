package handlers

import (
	"context"
	"net/http"

	"github.com/adkotun/tg-memory/memory-backend/common"
	"github.com/adkotun/tg-memory/memory-backend/config"
	"github.com/adkotun/tg-memory/memory-backend/game"
	"github.com/adkotun/tg-memory/memory-backend/imagehash"
	"github.com/adkotun/tg-memory/memory-backend/models"
	"github.com/adkotun/tg-memory/memory-backend/session"
	"github.com/adkotun/tg-memory/memory-backend/telegram"
)

// StatisticsStore is what the handlers need from persistence: the user row
// behind a login and the best-score bookkeeping behind a finished board.
type StatisticsStore interface {
	UpsertUser(ctx context.Context, telegramID int64, name, image string) (*models.User, error)
	RecordCompletion(ctx context.Context, userID int64, deckSize, steps, seconds int) error
	TopScores(ctx context.Context, deckSize, limit int) ([]models.Score, error)
}

type Handler struct {
	cfg      *config.Config
	store    StatisticsStore
	verifier *telegram.Verifier
	sessions *session.Codec
	decks    *game.Cipher
	images   *imagehash.Codec
	rules    game.Rules
}

func New(cfg *config.Config, store StatisticsStore) (*Handler, error) {
	decks, err := game.NewCipher(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	rules := game.SingleFlip()
	if cfg.GameMode == config.ModeDoubleFlip {
		rules = game.DoubleFlip()
	}

	return &Handler{
		cfg:      cfg,
		store:    store,
		verifier: telegram.NewVerifier(cfg.BotToken),
		sessions: session.NewCodec(cfg.JWTSecret),
		decks:    decks,
		images:   imagehash.NewCodec(cfg.JWTSecret),
		rules:    rules,
	}, nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the cookie to force the client to drop it.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func authInfo(r *http.Request) (*models.Claims, bool) {
	claims, ok := r.Context().Value(common.AuthInfoKey).(*models.Claims)
	return claims, ok
}
