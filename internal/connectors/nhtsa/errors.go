package nhtsa

import (
	"fmt"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// UpstreamError represents a non-success response from an NHTSA service.
type UpstreamError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("nhtsa: upstream status %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("nhtsa: upstream status %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap lets errors.Is(err, domain.ErrUpstream) match.
func (e *UpstreamError) Unwrap() error {
	return domain.ErrUpstream
}
