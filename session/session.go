package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/adkotun/tg-memory/memory-backend/models"
)

// CookieName is the cookie the session token travels in. It is httpOnly and
// SameSite strict; page script never sees it.
const CookieName = "tg-mini-game"

// TTL is how long an issued token stays valid.
const TTL = 24 * time.Hour

// Codec signs and verifies the session tokens that carry all game state.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), ttl: TTL}
}

// Issue stamps the claims with the schema version and expiry and signs them.
func (c *Codec) Issue(claims *models.Claims) (string, error) {
	claims.Version = models.ClaimsVersion
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(c.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies a presented token and returns its claims. It fails closed:
// a structural, signature or expiry problem all yield an error, which callers
// treat the same as "not authenticated".
func (c *Codec) Parse(tokenStr string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
