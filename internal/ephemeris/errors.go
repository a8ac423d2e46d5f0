package ephemeris

import (
	"errors"
	"fmt"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
)

// ErrorCode categorizes oracle failures.
type ErrorCode string

const (
	// ErrCodeUnsupportedBody indicates a body the oracle cannot compute.
	ErrCodeUnsupportedBody ErrorCode = "UNSUPPORTED_BODY"

	// ErrCodeInstantOutOfRange indicates an instant outside the oracle's
	// valid time span.
	ErrCodeInstantOutOfRange ErrorCode = "INSTANT_OUT_OF_RANGE"

	// ErrCodeInvalidHouseSystem indicates an unknown house system name.
	ErrCodeInvalidHouseSystem ErrorCode = "INVALID_HOUSE_SYSTEM"

	// ErrCodeComputeFailed indicates an internal computation error.
	ErrCodeComputeFailed ErrorCode = "COMPUTE_FAILED"
)

// OracleError is a failure from a position oracle. A scan that receives
// one aborts whole; no partial timeline is ever returned.
type OracleError struct {
	Code    ErrorCode
	Body    astro.Body
	Instant astro.Instant
	Message string
}

// Error implements the error interface.
func (e *OracleError) Error() string {
	if e.Code == ErrCodeUnsupportedBody {
		return fmt.Sprintf("%s: %s (body=%d)", e.Code, e.Message, int(e.Body))
	}
	return fmt.Sprintf("%s: %s (body=%s, jd=%.6f)", e.Code, e.Message, e.Body, float64(e.Instant))
}

// IsOracleError reports whether err is (or wraps) an OracleError.
func IsOracleError(err error) bool {
	var oe *OracleError
	return errors.As(err, &oe)
}

// NewUnsupportedBodyError builds an OracleError for a body outside the
// oracle's table.
func NewUnsupportedBodyError(body astro.Body) *OracleError {
	return &OracleError{
		Code:    ErrCodeUnsupportedBody,
		Body:    body,
		Message: "body not supported by this oracle",
	}
}

// NewInstantOutOfRangeError builds an OracleError for an instant outside
// the oracle's valid span.
func NewInstantOutOfRangeError(body astro.Body, at astro.Instant) *OracleError {
	return &OracleError{
		Code:    ErrCodeInstantOutOfRange,
		Body:    body,
		Instant: at,
		Message: "instant outside oracle time span",
	}
}
