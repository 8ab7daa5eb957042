package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no server address
// is configured, leaving no transport handlers to initialize. This is a
// fatal misconfiguration and fails the application at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
