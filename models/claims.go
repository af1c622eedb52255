package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// ClaimsVersion is bumped whenever the claims payload changes shape, so old
// cookies can be told apart from new ones instead of misparsed.
const ClaimsVersion = 1

// Claims is the entire state of one in-progress game. The server keeps
// nothing between requests; every mutating call re-issues a fresh token.
type Claims struct {
	jwt.RegisteredClaims
	Version int   `json:"v"`
	UserID  int64 `json:"id"`
	// DeckSize is the board side length; zero means no game in progress.
	DeckSize int `json:"deckSize"`
	// DeckValues is the encrypted board. Holding a valid token is not enough
	// to read it: decryption needs the server-only deck key.
	DeckValues string `json:"deckValues"`
	Steps      int    `json:"steps"`
	// LastCell is the index of a card left face up, or -1 when none is.
	LastCell  int   `json:"lastcell"`
	StartTime int64 `json:"startTime"`
}
