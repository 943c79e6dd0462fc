package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// TestErrorWrappingCompatibility tests Go 1.13+ error wrapping with our custom types
func TestErrorWrappingCompatibility(t *testing.T) {
	originalErr := scigoErrors.NewDimensionError("MSE", 4, 3, 0)

	wrappedErr := fmt.Errorf("evaluation step failed: %w", originalErr)

	if !errors.Is(wrappedErr, originalErr) {
		t.Errorf("errors.Is failed to identify wrapped error")
	}

	var dimErr *scigoErrors.DimensionError
	if !errors.As(wrappedErr, &dimErr) {
		t.Fatalf("errors.As failed to extract DimensionError")
	}

	if dimErr.Expected != 4 || dimErr.Got != 3 {
		t.Errorf("expected 4/3, got %d/%d", dimErr.Expected, dimErr.Got)
	}
}

func TestSentinelKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"dimension", scigoErrors.NewDimensionError("op", 1, 2, 0), scigoErrors.ErrLengthMismatch},
		{"empty", scigoErrors.NewEmptyInputError("op"), scigoErrors.ErrEmptyData},
		{"degenerate", scigoErrors.NewDegenerateMetricError("op", "tp+fp is zero"), scigoErrors.ErrDegenerateMetric},
		{"missing proba", scigoErrors.NewMissingProbabilityError("op", "auc"), scigoErrors.ErrMissingProbability},
		{"domain", scigoErrors.NewInvalidDomainError("yTrue", 2, -1.5), scigoErrors.ErrInvalidDomain},
		{"division", scigoErrors.NewDivisionByZeroError("yTrue", 0), scigoErrors.ErrDivisionByZero},
		{"unsupported", scigoErrors.NewUnsupportedMetricError("op", "bogus", []string{"mae"}), scigoErrors.ErrUnsupportedMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.True(t, scigoErrors.Is(fmt.Errorf("wrapped: %w", tt.err), tt.sentinel))
		})
	}
}

func TestSentinelKindsAreDistinct(t *testing.T) {
	err := scigoErrors.NewDivisionByZeroError("yTrue", 3)
	assert.False(t, errors.Is(err, scigoErrors.ErrInvalidDomain))
	assert.False(t, errors.Is(err, scigoErrors.ErrEmptyData))
}

func TestUnsupportedMetricErrorListsRegistry(t *testing.T) {
	available := []string{"mae", "mse"}
	err := scigoErrors.NewUnsupportedMetricError("RegressionCalculator.Compute", "bogus", available)
	available[0] = "changed"

	var unsupported *scigoErrors.UnsupportedMetricError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "bogus", unsupported.Metric)
	assert.Equal(t, []string{"mae", "mse"}, unsupported.Available)
	assert.Contains(t, err.Error(), "available metrics: mae, mse")
}

func TestValidationErrorCarriesIndex(t *testing.T) {
	err := scigoErrors.NewInvalidDomainError("yPred", 1, -2)

	var valErr *scigoErrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "yPred", valErr.ParamName)
	assert.Equal(t, -2.0, valErr.Value)
	assert.Contains(t, err.Error(), "index 1")
}

// TestCombinedErrorTypes tests mixing custom and standard errors
func TestCombinedErrorTypes(t *testing.T) {
	stdErr := fmt.Errorf("standard error")

	customErr := scigoErrors.NewModelError("TestOp", "test failure", stdErr)

	wrappedErr := fmt.Errorf("operation context: %w", customErr)

	if !errors.Is(wrappedErr, stdErr) {
		t.Errorf("failed to find standard error in chain")
	}

	var modelErr *scigoErrors.ModelError
	if !errors.As(wrappedErr, &modelErr) {
		t.Fatalf("failed to extract ModelError")
	}

	if modelErr.Unwrap() != stdErr {
		t.Errorf("ModelError.Unwrap() didn't return expected error")
	}
}

func TestRecover(t *testing.T) {
	panicky := func(v interface{}) (err error) {
		defer scigoErrors.Recover(&err, "panicky")
		panic(v)
	}

	err := panicky("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicky")
	assert.Contains(t, err.Error(), "boom")

	cause := errors.New("inner")
	err = panicky(cause)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))

	quiet := func() (err error) {
		defer scigoErrors.Recover(&err, "quiet")
		return nil
	}
	assert.NoError(t, quiet())
}
