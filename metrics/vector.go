package metrics

import (
	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// NewVector wraps data in a *mat.VecDense. Unlike mat.NewVecDense it accepts an
// empty slice and returns an empty vector instead of panicking.
//
// The returned vector shares data's backing array.
func NewVector(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(data), data)
}

// vecLen returns the length of v, treating nil as empty.
func vecLen(v mat.Vector) int {
	if v == nil {
		return 0
	}
	if vd, ok := v.(*mat.VecDense); ok && vd == nil {
		return 0
	}
	return v.Len()
}

// checkPair verifies that yTrue and yPred have the same length and returns it.
func checkPair(op string, yTrue, yPred mat.Vector) (int, error) {
	n := vecLen(yTrue)
	if m := vecLen(yPred); m != n {
		return 0, scigoErrors.NewDimensionError(op, n, m, 0)
	}
	return n, nil
}

// checkNonEmptyPair is checkPair that additionally rejects empty input.
func checkNonEmptyPair(op string, yTrue, yPred mat.Vector) (int, error) {
	n, err := checkPair(op, yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, scigoErrors.NewEmptyInputError(op)
	}
	return n, nil
}

func isBinaryLabel(v float64) bool {
	return v == 0 || v == 1
}
