package validator

import "errors"

var (
	// ErrValidationFailed is wrapped by every *Failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrProjection is wrapped when Map cannot derive the nested payload.
	ErrProjection = errors.New("validator: payload projection failed")
)

// ExtractMessages returns the messages of a *Failure found in err's chain.
func ExtractMessages(err error) []string {
	if err == nil {
		return nil
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Messages
	}

	return nil
}

// IsFailure reports whether err is a validation failure rather than a fault.
func IsFailure(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
