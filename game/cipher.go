package game

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Key derivation parameters. The salt is fixed on purpose: the derivation
// only has to be stable per deployment, the secret is the protected material.
const (
	cipherSalt = "salt"
	scryptN    = 16384
	scryptR    = 8
	scryptP    = 1
)

// Cipher hides the board inside the already-signed session token. The outer
// signature proves the token is genuine; this layer keeps a client that can
// decode (but not forge) the token from reading unrevealed cards. The two
// layers never share a key.
type Cipher struct {
	key []byte
}

func NewCipher(secret string) (*Cipher, error) {
	key, err := scrypt.Key([]byte(secret), []byte(cipherSalt), scryptN, scryptR, scryptP, 32)
	if err != nil {
		return nil, fmt.Errorf("deriving deck key: %w", err)
	}
	return &Cipher{key: key}, nil
}

// Encrypt serializes the deck and encrypts it with AES-256-CBC to a hex
// string suitable for a token claim. The IV is all zeroes: every game is a
// fresh plaintext under a per-deployment key, and a deterministic ciphertext
// is what lets identical tokens be compared for tests.
func (c *Cipher) Encrypt(deck []int) (string, error) {
	plaintext, err := json.Marshal(deck)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Any failure (odd hex, truncated ciphertext, bad
// padding, garbage plaintext) is a hard error: the session is unusable and
// the client has to start over.
func (c *Cipher) Decrypt(encoded string) ([]int, error) {
	ciphertext, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("deck payload is not hex: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("deck payload has invalid length %d", len(ciphertext))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	padded := make([]byte, len(ciphertext))
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	var deck []int
	if err := json.Unmarshal(plaintext, &deck); err != nil {
		return nil, fmt.Errorf("deck payload did not decrypt to a board: %w", err)
	}
	return deck, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padding)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-padding], nil
}
