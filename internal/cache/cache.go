package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/textsoap/soap/internal/model"
)

// Cache memoizes analysis reports. Batch runs over files with repeated
// content hit the cache instead of re-running the engine.
type Cache interface {
	Get(key string) (*model.Report, bool)
	Set(key string, report *model.Report, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a text buffer from its content hash.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "soap:v1:" + hex.EncodeToString(hash[:])
}
