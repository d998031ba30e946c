package fetch

import (
	"errors"
	"fmt"
)

var ErrTimeout = errors.New("upstream request timed out")
var ErrSuperseded = errors.New("request superseded by a newer one")
var ErrParse = errors.New("upstream response has unexpected shape")

// NetworkError carries the upstream status for transport or non-success
// responses. Superseded and timed out requests are not network errors.
type NetworkError struct {
	Status  int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream request failed: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream request failed: %s", e.Message)
}

func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
