package fuzzyac

import "errors"

// Construction-time errors. Search operations are total and never return
// an error; malformed input is absorbed by the normalizer (see internal/normalize).
var (
	// ErrEmptyPattern is returned when a pattern's text normalizes to zero tokens.
	ErrEmptyPattern = errors.New("fuzzyac: pattern must contain at least one token")

	// ErrNoPatterns is returned when Build is called with no registered patterns.
	ErrNoPatterns = errors.New("fuzzyac: at least one pattern is required")

	// ErrInvalidWeight is returned when a pattern's weight is negative. A zero
	// weight is not rejected: Build treats it as unset and uses 1.0.
	ErrInvalidWeight = errors.New("fuzzyac: pattern weight must be > 0")
)
