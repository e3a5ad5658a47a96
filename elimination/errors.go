package elimination

import "errors"

var (
	// ErrCandidateOutOfRange indicates a candidate index outside the division.
	ErrCandidateOutOfRange = errors.New("elimination: candidate index out of range")

	// ErrIllegalTransition indicates a state machine move that is not allowed.
	ErrIllegalTransition = errors.New("elimination: illegal state transition")

	// ErrInvalidDivision wraps a standings validation failure under strict validation.
	ErrInvalidDivision = errors.New("elimination: invalid division")

	// ErrCertificateInvalid indicates a certificate that does not prove elimination
	// or does not match the division it is checked against.
	ErrCertificateInvalid = errors.New("elimination: certificate does not prove elimination")
)
