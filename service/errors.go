package service

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrMessageRequired = errors.New("message is required")
	ErrTextRequired    = errors.New("text is required")
	ErrNoSource        = errors.New("either url or title/content required")
)

// FetchError reports a failed URL retrieval during ingestion.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch URL %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
