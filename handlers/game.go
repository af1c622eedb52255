package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/adkotun/tg-memory/memory-backend/game"
	"github.com/adkotun/tg-memory/memory-backend/models"
	"github.com/adkotun/tg-memory/memory-backend/responses"
	"github.com/adkotun/tg-memory/memory-backend/utils"
)

// StartGame deals a fresh board and bakes it, encrypted, into a new session
// token. In double-flip mode the reply also carries one opaque image
// reference per cell, so the client can fetch card art without ever seeing a
// file name that identifies the card.
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	claims, ok := authInfo(r)
	if !ok {
		utils.HandleError(w, responses.InternalServerError{Msg: "Error processing request."})
		return
	}

	var req models.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request."})
		return
	}

	if !game.ValidDeckSize(req.DeckSize) {
		utils.HandleError(w, responses.BadRequestError{Msg: "deckSize must be one of 4, 6 or 8."})
		return
	}

	deck, err := h.rules.Generate(req.DeckSize * req.DeckSize)
	if err != nil {
		log.Printf("Failed to generate a %dx%d deck: %v", req.DeckSize, req.DeckSize, err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to start the game."})
		return
	}

	encrypted, err := h.decks.Encrypt(deck)
	if err != nil {
		log.Println(err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to start the game."})
		return
	}

	tokenString, err := h.sessions.Issue(&models.Claims{
		UserID:     claims.UserID,
		DeckSize:   req.DeckSize,
		DeckValues: encrypted,
		Steps:      0,
		LastCell:   game.NoCell,
		StartTime:  time.Now().Unix(),
	})
	if err != nil {
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to generate token."})
		return
	}
	h.setSessionCookie(w, tokenString)

	if h.rules.Flips != 2 {
		utils.JSON(w, models.StartGameResponse{Success: true})
		return
	}

	paths := make([]string, len(deck))
	for i, value := range deck {
		paths[i], err = h.images.Encode(fmt.Sprintf("%d.svg", value))
		if err != nil {
			log.Println(err)
			utils.HandleError(w, responses.InternalServerError{Msg: "Failed to start the game."})
			return
		}
	}
	utils.JSON(w, models.StartGameResponse{Paths: paths, Success: true})
}

// OpenCard is the single-flip reveal: one index in, the revealed value out.
func (h *Handler) OpenCard(w http.ResponseWriter, r *http.Request) {
	claims, ok := authInfo(r)
	if !ok {
		utils.HandleError(w, responses.InternalServerError{Msg: "Error processing request."})
		return
	}

	var req models.OpenCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request."})
		return
	}

	state, ok := h.loadGame(w, claims)
	if !ok {
		return
	}

	cells := claims.DeckSize * claims.DeckSize
	if err := h.rules.CheckIndex(req.Index, cells); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Cell index out of range."})
		return
	}

	res, err := state.RevealOne(req.Index)
	if err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Cell index out of range."})
		return
	}

	if !h.commit(w, r, claims, state, res.Completed) {
		return
	}
	utils.JSON(w, models.OpenCardResponse{Image: res.Value, Success: true})
}

// RevealPair is the two-flip reveal: both indexes in one request, and only
// the match outcome comes back. A mismatch leaks nothing about either card.
func (h *Handler) RevealPair(w http.ResponseWriter, r *http.Request) {
	claims, ok := authInfo(r)
	if !ok {
		utils.HandleError(w, responses.InternalServerError{Msg: "Error processing request."})
		return
	}

	var req models.RevealPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request."})
		return
	}

	state, ok := h.loadGame(w, claims)
	if !ok {
		return
	}

	cells := claims.DeckSize * claims.DeckSize
	if err := h.rules.CheckIndex(req.First, cells); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Cell index out of range."})
		return
	}
	if err := h.rules.CheckIndex(req.Second, cells); err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Cell index out of range."})
		return
	}

	res, err := state.RevealTwo(req.First, req.Second)
	if err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid cell pair."})
		return
	}

	if !h.commit(w, r, claims, state, res.Completed) {
		return
	}
	utils.JSON(w, models.RevealPairResponse{Success: res.Matched})
}

// loadGame decrypts the board out of the claims. A token without a game is a
// client error; a board that no longer decrypts kills the session outright.
func (h *Handler) loadGame(w http.ResponseWriter, claims *models.Claims) (*game.State, bool) {
	if claims.DeckSize == 0 || claims.DeckValues == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "No game in progress."})
		return nil, false
	}

	deck, err := h.decks.Decrypt(claims.DeckValues)
	if err != nil {
		log.Printf("Failed to decrypt deck for user %d: %v", claims.UserID, err)
		h.clearSessionCookie(w)
		utils.HandleError(w, responses.UnauthorizedError{Msg: "Game session is corrupted. Please start a new game."})
		return nil, false
	}

	return &game.State{
		Deck:      deck,
		Steps:     claims.Steps,
		LastCell:  claims.LastCell,
		StartTime: claims.StartTime,
	}, true
}

// commit finishes a move: on completion the statistics row is written first,
// and only a successful write is followed by a replacement token. A client
// whose final move failed on the store keeps its pre-move token and can
// repeat the move.
func (h *Handler) commit(w http.ResponseWriter, r *http.Request, claims *models.Claims, state *game.State, completed bool) bool {
	if completed {
		elapsed := time.Now().Unix() - state.StartTime
		ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
		defer cancel()
		if err := h.store.RecordCompletion(ctx, claims.UserID, claims.DeckSize, state.Steps, int(elapsed)); err != nil {
			log.Printf("Failed to record completion for user %d: %v", claims.UserID, err)
			utils.HandleError(w, responses.InternalServerError{Msg: "Failed to record the finished game."})
			return false
		}
	}

	encrypted, err := h.decks.Encrypt(state.Deck)
	if err != nil {
		log.Println(err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Error processing request."})
		return false
	}

	tokenString, err := h.sessions.Issue(&models.Claims{
		UserID:     claims.UserID,
		DeckSize:   claims.DeckSize,
		DeckValues: encrypted,
		Steps:      state.Steps,
		LastCell:   state.LastCell,
		StartTime:  state.StartTime,
	})
	if err != nil {
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to generate token."})
		return false
	}

	h.setSessionCookie(w, tokenString)
	return true
}
