package secure

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	keySize  = chacha20poly1305.KeySize

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrDecryption is returned for a wrong key, a tampered message or input
// that is not a ciphertext produced by this package.
var ErrDecryption = errors.New("secure: decryption failed")

// Cipher seals strings under a passphrase. Messages are
// base64(salt | nonce | ciphertext+tag).
type Cipher struct {
	passphrase []byte
	salt       []byte

	mu   sync.Mutex
	keys map[string][]byte
}

func New(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, errors.New("secure: empty passphrase")
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("secure: read salt: %w", err)
	}
	return &Cipher{
		passphrase: []byte(passphrase),
		salt:       salt,
		keys:       make(map[string][]byte),
	}, nil
}

func (c *Cipher) key(salt []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if k, ok := c.keys[string(salt)]; ok {
		return k, nil
	}
	k, err := scrypt.Key(c.passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("secure: derive key: %w", err)
	}
	c.keys[string(salt)] = k
	return k, nil
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	k, err := c.key(c.salt)
	if err != nil {
		return "", err
	}
	aead, err := chacha20poly1305.NewX(k)
	if err != nil {
		return "", fmt.Errorf("secure: init aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("secure: read nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, c.salt...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: not base64", ErrDecryption)
	}
	if len(raw) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", fmt.Errorf("%w: message too short", ErrDecryption)
	}

	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	sealed := raw[saltSize+chacha20poly1305.NonceSizeX:]

	k, err := c.key(salt)
	if err != nil {
		return "", err
	}
	aead, err := chacha20poly1305.NewX(k)
	if err != nil {
		return "", fmt.Errorf("secure: init aead: %w", err)
	}
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(plain), nil
}

// Encrypt seals plaintext under key.
func Encrypt(plaintext, key string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// Decrypt opens a message produced by Encrypt with the same key.
func Decrypt(ciphertext, key string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// GenerateKey returns n random bytes, hex encoded.
func GenerateKey(n int) (string, error) {
	if n <= 0 {
		n = keySize
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("secure: read key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
