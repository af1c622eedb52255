package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// webAppLabel is the fixed HMAC key Telegram prescribes for deriving the
// per-bot secret from the bot token.
const webAppLabel = "WebAppData"

type User struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	LanguageCode    string `json:"language_code"`
	IsPremium       bool   `json:"is_premium"`
	AllowsWriteToPm bool   `json:"allows_write_to_pm"`
	PhotoURL        string `json:"photo_url"`
}

// InitData is the identity assertion a mini app receives from the Telegram
// client. It is consumed once per login and never persisted verbatim.
type InitData struct {
	AuthDate     int64
	ChatInstance int64
	ChatType     string
	Signature    string
	User         User
}

// ParseInitData extracts the user claims from the raw init-data query string.
// Parsing says nothing about authenticity; pair it with Verifier.Verify.
func ParseInitData(initData string) (*InitData, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("malformed init data: %w", err)
	}

	for _, param := range []string{"user", "auth_date", "chat_instance", "chat_type", "signature"} {
		if values.Get(param) == "" {
			return nil, fmt.Errorf("init data is missing %q", param)
		}
	}

	var user User
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return nil, fmt.Errorf("invalid user payload: %w", err)
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid auth_date: %w", err)
	}
	chatInstance, err := strconv.ParseInt(values.Get("chat_instance"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat_instance: %w", err)
	}

	return &InitData{
		AuthDate:     authDate,
		ChatInstance: chatInstance,
		ChatType:     values.Get("chat_type"),
		Signature:    values.Get("signature"),
		User:         user,
	}, nil
}

// Verifier checks init-data signatures for a single bot.
type Verifier struct {
	botToken string
}

func NewVerifier(botToken string) *Verifier {
	return &Verifier{botToken: botToken}
}

// Verify reports whether hash is the valid signature of initData. The secret
// key is HMAC-SHA256(webAppLabel, botToken); the signature is HMAC-SHA256 of
// the canonical data-check string under that key, as lowercase hex.
func (v *Verifier) Verify(hash, initData string) bool {
	mac := hmac.New(sha256.New, []byte(webAppLabel))
	mac.Write([]byte(v.botToken))
	secretKey := mac.Sum(nil)

	mac = hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString(initData)))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(hash))
}

// dataCheckString canonicalizes init data: the hash pair is dropped, values
// are URL-decoded, pairs are sorted by key and joined with newlines.
func dataCheckString(initData string) string {
	pairs := strings.Split(initData, "&")
	lines := make([][2]string, 0, len(pairs))
	for _, pair := range pairs {
		if strings.HasPrefix(pair, "hash=") {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		lines = append(lines, [2]string{key, value})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i][0] < lines[j][0] })

	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line[0] + "=" + line[1]
	}
	return strings.Join(parts, "\n")
}
