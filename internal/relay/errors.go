// internal/relay/errors.go
package relay

import (
	"errors"
	"fmt"
)

// Sentinel errors for relay fetch outcomes. Use errors.Is to classify.
var (
	// ErrRelayUnavailable indicates the relay answered with a non-success
	// status. The concrete *RelayUnavailableError carries the status code.
	ErrRelayUnavailable = errors.New("relay unavailable")

	// ErrEmptyRelayPayload indicates the relay answered successfully but its
	// envelope carried no contents: the target refused or the relay could
	// not reach it.
	ErrEmptyRelayPayload = errors.New("relay returned empty payload")
)

// RelayUnavailableError reports a non-2xx relay response with diagnostics.
type RelayUnavailableError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *RelayUnavailableError) Error() string {
	return fmt.Sprintf("relay unavailable: HTTP %d %s (url: %s)", e.StatusCode, e.Status, e.URL)
}

// Is makes errors.Is(err, ErrRelayUnavailable) match.
func (e *RelayUnavailableError) Is(target error) bool {
	return target == ErrRelayUnavailable
}
