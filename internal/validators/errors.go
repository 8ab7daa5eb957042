package validators

import "errors"

var (
	ErrInvalidTimestamp = errors.New("timestamp must be RFC 3339 or YYYY-MM-DDTHH:MM[:SS]")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
)
