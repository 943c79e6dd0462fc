// Package preprocessing provides input preparation for evaluation metrics.
//
//   - Binarizer: Converts probability scores into hard 0/1 labels at a threshold
//
// Classification metrics such as precision and recall need hard labels, while
// AUC and log-loss need the raw scores. Binarizer lets a caller derive both
// from one model output:
//
//	yPred, err := preprocessing.NewBinarizerDefault().Transform(yProba)
//	f1, err := calc.Compute(metrics.MetricF1, yTrue, yPred)
//	auc, err := calc.Compute(metrics.MetricAUC, yTrue, yPred, metrics.WithProbabilities(yProba))
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// DefaultThreshold is the cutoff used by NewBinarizerDefault.
const DefaultThreshold = 0.5

// Binarizer maps each score strictly greater than Threshold to 1 and every
// other score to 0. It holds no fitted state and is safe for concurrent use.
type Binarizer struct {
	// Threshold is the cutoff; a score equal to it maps to 0.
	Threshold float64
}

// NewBinarizer creates a Binarizer with the given threshold.
//
// Example:
//
//	// Favour recall: call anything above 0.3 positive
//	b := preprocessing.NewBinarizer(0.3)
//	yPred, err := b.Transform(yProba)
func NewBinarizer(threshold float64) *Binarizer {
	return &Binarizer{Threshold: threshold}
}

// NewBinarizerDefault creates a Binarizer with DefaultThreshold.
func NewBinarizerDefault() *Binarizer {
	return NewBinarizer(DefaultThreshold)
}

// Transform returns a new vector of 0/1 labels, one per score. Empty input
// yields an empty vector.
//
// Errors:
//   - ValidationError: if the threshold or any score is NaN
func (b *Binarizer) Transform(scores mat.Vector) (_ *mat.VecDense, err error) {
	defer scigoErrors.Recover(&err, "Binarizer.Transform")
	if math.IsNaN(b.Threshold) {
		return nil, scigoErrors.NewValidationError("threshold", "must not be NaN", b.Threshold)
	}

	if scores == nil || scores.Len() == 0 {
		return &mat.VecDense{}, nil
	}

	n := scores.Len()
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		s := scores.AtVec(i)
		if math.IsNaN(s) {
			return nil, scigoErrors.NewValidationError("scores", fmt.Sprintf("NaN at index %d", i), s)
		}
		if s > b.Threshold {
			labels[i] = 1
		}
	}
	return mat.NewVecDense(n, labels), nil
}
