package imagehash

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Codec turns image file names into opaque, per-call-unique URL tokens, so a
// client cannot tell which card sits behind a cell by comparing the asset
// URLs it is given.
type Codec struct {
	key []byte
}

func NewCodec(secret string) *Codec {
	key := sha256.Sum256([]byte(secret))
	return &Codec{key: key[:]}
}

// Encode encrypts path with AES-CTR under a fresh random IV and returns
// base64url(IV || ciphertext). Encoding the same path twice yields different
// tokens that both decode to it.
func (c *Codec) Encode(path string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	out := make([]byte, aes.BlockSize+len(path))
	iv := out[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}
	cipher.NewCTR(block, iv).XORKeyStream(out[aes.BlockSize:], []byte(path))

	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Decode reverses Encode. Callers map any error to "not found": a token that
// does not decode simply references no image.
func (c *Codec) Decode(token string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed image token: %w", err)
	}
	if len(data) < aes.BlockSize {
		return "", fmt.Errorf("image token too short")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	path := make([]byte, len(data)-aes.BlockSize)
	cipher.NewCTR(block, data[:aes.BlockSize]).XORKeyStream(path, data[aes.BlockSize:])

	return string(path), nil
}
