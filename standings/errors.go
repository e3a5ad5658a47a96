package standings

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and validating divisions.
// Callers branch with errors.Is; ParseError and ValidationError carry position.
var (
	// ErrBadHeader indicates the division header is not an integer.
	ErrBadHeader = errors.New("standings: bad division header")

	// ErrEmptyDivision indicates a division with zero teams.
	ErrEmptyDivision = errors.New("standings: division has no teams")

	// ErrTokenCount indicates a team record cut short by a new record or header.
	ErrTokenCount = errors.New("standings: wrong number of tokens in team record")

	// ErrNotNumeric indicates a wins, remaining or games field that is not an integer.
	ErrNotNumeric = errors.New("standings: value is not an integer")

	// ErrNegative indicates a negative wins, remaining or games value.
	ErrNegative = errors.New("standings: negative value")

	// ErrDuplicateName indicates two teams with the same name in one division.
	ErrDuplicateName = errors.New("standings: duplicate team name")

	// ErrTruncated indicates a division that ends, at the next header or at
	// end of input, before all of its team records.
	ErrTruncated = errors.New("standings: division has fewer team records than announced")

	// ErrAsymmetric indicates Games[i][j] != Games[j][i].
	ErrAsymmetric = errors.New("standings: games matrix is not symmetric")

	// ErrDiagonal indicates a team scheduled against itself.
	ErrDiagonal = errors.New("standings: team has games against itself")

	// ErrInconsistentRemaining indicates remaining != row sum of the games matrix.
	ErrInconsistentRemaining = errors.New("standings: remaining does not match games matrix")

	// ErrShape indicates a games matrix that is not n×n.
	ErrShape = errors.New("standings: games matrix has wrong shape")
)

// ParseError reports a malformed division in an input stream.
//
// Division is the 1-based ordinal of the division in the stream and Line the
// 1-based input line where the problem was detected.
type ParseError struct {
	Division int
	Line     int
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("standings: division %d, line %d: %v", e.Division, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a structural inconsistency between teams i and j
// (j is -1 when only one team is involved).
type ValidationError struct {
	I, J int
	Err  error
}

func (e *ValidationError) Error() string {
	if e.J < 0 {
		return fmt.Sprintf("standings: team %d: %v", e.I, e.Err)
	}
	return fmt.Sprintf("standings: teams %d and %d: %v", e.I, e.J, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
