package usecase

import (
	"errors"
	"fmt"
	"strings"

	"voltride-booking/internal/data/entity"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrFleetVehicleNotFound = errors.New("fleet vehicle not found")
	ErrContractNotFound     = errors.New("contract not found")
)

// ActivationError wraps any failure past the reference checks of the
// check-out workflow. Activation is idempotent per booking, so the caller
// may retry the same request.
type ActivationError struct {
	Step string
	Err  error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("activation failed at %s: %v", e.Step, e.Err)
}

func (e *ActivationError) Unwrap() error {
	return e.Err
}

// MissingDocumentsError blocks contract finalization while required captures
// are absent. It is an expected, user-actionable state, not a server fault.
type MissingDocumentsError struct {
	Missing []entity.DocumentKind
}

func (e *MissingDocumentsError) Error() string {
	kinds := make([]string, len(e.Missing))
	for i, kind := range e.Missing {
		kinds[i] = string(kind)
	}
	return "missing documents: " + strings.Join(kinds, ", ")
}
