package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by every TransportError.
	ErrTransport = errors.New("transport failure")
	// ErrNoTranslationFound means the page was fetched but has no translation table.
	ErrNoTranslationFound = errors.New("no translation found")
	ErrInvalidArgument    = errors.New("invalid argument")
	// ErrMalformedResponse is returned for page structures the extractors don't understand.
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError is a failed request: either a network error or a non-200 response.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
