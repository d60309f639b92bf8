package countdown

import (
	"errors"
	"strconv"
	"time"
)

// AnchorKey is the storage key of the persisted relative-mode anchor.
const AnchorKey = "promo_timer_start"

// ErrCorruptAnchor indicates the stored anchor is not a millisecond timestamp
// at or before the current time.
var ErrCorruptAnchor = errors.New("corrupt anchor")

// KeyValueStore is the persistent storage capability used for the anchor.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// EncodeAnchor formats an anchor as a base-10 millisecond timestamp.
func EncodeAnchor(anchor time.Time) string {
	return strconv.FormatInt(anchor.UnixMilli(), 10)
}

// DecodeAnchor parses a stored anchor value.
func DecodeAnchor(value string) (time.Time, error) {
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil || millis < 0 {
		return time.Time{}, ErrCorruptAnchor
	}
	return time.UnixMilli(millis), nil
}

// ReadAnchor returns the stored anchor without creating one.
// The boolean is false when no usable anchor is stored. An anchor later than
// now is corrupt: a first run cannot lie in the future.
func ReadAnchor(store KeyValueStore, now time.Time) (time.Time, bool, error) {
	value, ok, err := store.Get(AnchorKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	anchor, err := DecodeAnchor(value)
	if err != nil {
		return time.Time{}, false, err
	}
	if anchor.After(now) {
		return time.Time{}, false, ErrCorruptAnchor
	}
	return anchor, true, nil
}

// ClearAnchor removes the stored anchor so the next run starts a fresh window.
func ClearAnchor(store KeyValueStore) error {
	return store.Delete(AnchorKey)
}
