package queries

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	cursorVersion    = 1
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Cursor is the opaque keyset position returned as nextCursor.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// cursorPayload pins the last row of a page by (start_at, id), the list order.
type cursorPayload struct {
	V       int       `json:"v"`
	StartUS int64     `json:"s"`
	ID      uuid.UUID `json:"id"`
}

// EncodeAfterCursor keeps microsecond precision, matching timestamptz.
func EncodeAfterCursor(startAt time.Time, id uuid.UUID) string {
	raw, _ := json.Marshal(cursorPayload{V: cursorVersion, StartUS: startAt.UnixMicro(), ID: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeAfterCursor returns an error marked ErrInvalidCursor for anything
// EncodeAfterCursor did not produce.
func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor encoding"), ErrInvalidCursor)
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor payload"), ErrInvalidCursor)
	}
	if p.V != cursorVersion || p.ID == uuid.Nil {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}
	return time.UnixMicro(p.StartUS).UTC(), p.ID, nil
}

// ValidateLimit clamps a page size to [1, MaxListLimit], defaulting when unset.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
