package core

// convert.go turns driver values into the plain Go values the table engine
// compares: float64 for numerics, time.Time for dates, string for text and
// UUIDs. Anything unrecognised passes through unchanged.

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// normalizeValue converts one value returned by pgx into an engine value.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil

	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64

	case pgtype.Date:
		if !val.Valid || val.InfinityModifier != pgtype.Finite {
			return nil
		}
		return val.Time

	case pgtype.Timestamptz:
		if !val.Valid || val.InfinityModifier != pgtype.Finite {
			return nil
		}
		return val.Time

	case pgtype.Text:
		if !val.Valid {
			return nil
		}
		return val.String

	case pgtype.Bool:
		if !val.Valid {
			return nil
		}
		return val.Bool

	case pgtype.UUID:
		if !val.Valid {
			return nil
		}
		return uuid.UUID(val.Bytes).String()

	case [16]byte:
		return uuid.UUID(val).String()

	case int16:
		return int64(val)

	case time.Time:
		return val

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalizeValue(inner)
		}
		return out

	default:
		return v
	}
}
