// Package errors provides the error types returned by evalmetrics.
//
// All errors are built on github.com/cockroachdb/errors so they carry stack
// traces (visible with the %+v verb) while remaining compatible with the
// standard errors.Is / errors.As functions.
//
// Every failure kind has a sentinel that callers can match with errors.Is:
//
//	_, err := calc.Compute(metrics.MetricMPE, yTrue, yPred)
//	if errors.Is(err, scigoErrors.ErrDivisionByZero) {
//	    // a ground-truth value was zero
//	}
//
// Richer context (operation name, offending index, available metrics) is
// available through errors.As on the concrete types below.
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrEmptyData is returned when a mean or ratio is requested over no elements.
	ErrEmptyData = errors.New("empty data")

	// ErrUnsupportedMetric is returned for a metric identifier outside a calculator's registry.
	ErrUnsupportedMetric = errors.New("unsupported metric")

	// ErrDegenerateMetric is returned when a metric's denominator is zero.
	ErrDegenerateMetric = errors.New("degenerate metric")

	// ErrMissingProbability is returned when a score-based metric is requested without scores.
	ErrMissingProbability = errors.New("missing probability scores")

	// ErrInvalidDomain is returned when a value lies outside a function's domain.
	ErrInvalidDomain = errors.New("value outside function domain")

	// ErrDivisionByZero is returned when a ground-truth value used as a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Re-exported helpers so callers need a single errors import.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)

// ValueError reports an argument with an unusable value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("evalmetrics: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// DimensionError reports paired inputs whose lengths differ.
// It matches ErrLengthMismatch.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("evalmetrics: %s: dimension mismatch on axis %d: expected %d, got %d",
		e.Op, e.Axis, e.Expected, e.Got)
}

// Unwrap exposes ErrLengthMismatch to errors.Is.
func (e *DimensionError) Unwrap() error {
	return ErrLengthMismatch
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError reports a parameter holding an invalid element.
type ValidationError struct {
	ParamName string
	Message   string
	Value     interface{}
	Err       error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("evalmetrics: invalid %s: %s", e.ParamName, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError without a cause.
func NewValidationError(paramName, message string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: paramName, Message: message, Value: value})
}

// NewInvalidDomainError reports value at index of paramName lying outside the
// domain of a function, e.g. ln(1+x) for x <= -1.
func NewInvalidDomainError(paramName string, index int, value float64) error {
	return errors.WithStack(&ValidationError{
		ParamName: paramName,
		Message:   fmt.Sprintf("value %g at index %d", value, index),
		Value:     value,
		Err:       ErrInvalidDomain,
	})
}

// NewDivisionByZeroError reports a zero divisor at index of paramName.
func NewDivisionByZeroError(paramName string, index int) error {
	return errors.WithStack(&ValidationError{
		ParamName: paramName,
		Message:   fmt.Sprintf("zero value at index %d", index),
		Value:     0.0,
		Err:       ErrDivisionByZero,
	})
}

// ModelError is an operation failure with an underlying cause, usually a sentinel.
type ModelError struct {
	Op      string
	Message string
	Err     error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evalmetrics: %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("evalmetrics: %s: %s", e.Op, e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, message string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Message: message, Err: err})
}

// NewEmptyInputError reports that op received empty input sequences.
func NewEmptyInputError(op string) error {
	return NewModelError(op, "input vectors cannot be empty", ErrEmptyData)
}

// NewDegenerateMetricError reports a zero denominator in op.
func NewDegenerateMetricError(op, message string) error {
	return NewModelError(op, message, ErrDegenerateMetric)
}

// NewMissingProbabilityError reports that metric was requested without scores.
func NewMissingProbabilityError(op, metric string) error {
	return NewModelError(op, fmt.Sprintf("%s requires probability scores", metric), ErrMissingProbability)
}

// UnsupportedMetricError reports a metric identifier outside a registry.
type UnsupportedMetricError struct {
	Op        string
	Metric    string
	Available []string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("evalmetrics: %s: metric %q not found, available metrics: %s",
		e.Op, e.Metric, strings.Join(e.Available, ", "))
}

// Unwrap exposes ErrUnsupportedMetric to errors.Is.
func (e *UnsupportedMetricError) Unwrap() error {
	return ErrUnsupportedMetric
}

// NewUnsupportedMetricError creates an UnsupportedMetricError. available is
// copied so later changes by the caller do not leak into the error.
func NewUnsupportedMetricError(op, metric string, available []string) error {
	names := append([]string(nil), available...)
	return errors.WithStack(&UnsupportedMetricError{Op: op, Metric: metric, Available: names})
}

// Recover converts a panic in the calling function into an error assigned to
// *err. It must be deferred:
//
//	func f() (err error) {
//	    defer Recover(&err, "f")
//	    ...
//	}
func Recover(err *error, op string) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*err = errors.Wrapf(e, "%s: recovered from panic", op)
		return
	}
	*err = errors.Newf("%s: recovered from panic: %v", op, r)
}
