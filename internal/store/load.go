// ABOUTME: Safe slice deserialization with typed fallbacks.
// ABOUTME: Missing or undecodable blobs never surface errors to callers.
package store

import (
	"encoding/json"
	"errors"

	"github.com/harperreed/lifedash/internal/kv"
)

// loadSlice reads and decodes one slice blob. A missing key or a blob that
// fails to decode yields the fallback; neither case is an error to the
// caller. Decode failures are visible on the debug channel only.
func loadSlice[T any](db kv.Store, key string, fallback T) T {
	raw, err := db.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Debug("slice read failed", "key", key, "err", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Debug("discarding undecodable slice", "key", key, "err", err)
		return fallback
	}
	return v
}
