package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for lexicon lookup results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TermKey generates a cache key for a lexicon term lookup
func TermKey(provider, term string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + term))
	return "quizgen:v1:" + hex.EncodeToString(hash[:])
}
