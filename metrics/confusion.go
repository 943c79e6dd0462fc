package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix holds the four counts of a binary confusion matrix.
type ConfusionMatrix struct {
	TP int // yTrue = 1, yPred = 1
	TN int // yTrue = 0, yPred = 0
	FP int // yTrue = 0, yPred = 1
	FN int // yTrue = 1, yPred = 0
}

// Total returns the number of pairs that fell into one of the four cells.
func (c ConfusionMatrix) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

func (c ConfusionMatrix) String() string {
	return fmt.Sprintf("TP=%d TN=%d FP=%d FN=%d", c.TP, c.TN, c.FP, c.FN)
}

// CountConfusion classifies each (yTrue[i], yPred[i]) pair into TP, TN, FP or
// FN in a single pass.
//
// Only the labels 0 and 1 are counted. A pair where either side holds any
// other value is skipped, so Total() equals the input length only when every
// label is binary. Empty input yields a zero ConfusionMatrix.
//
// Returns an error only when the vectors differ in length.
//
// Example:
//
//	yTrue := mat.NewVecDense(4, []float64{1, 0, 1, 1})
//	yPred := mat.NewVecDense(4, []float64{1, 0, 0, 1})
//	cm, _ := metrics.CountConfusion(yTrue, yPred)
//	fmt.Println(cm) // TP=2 TN=1 FP=0 FN=1
func CountConfusion(yTrue, yPred mat.Vector) (ConfusionMatrix, error) {
	n, err := checkPair("CountConfusion", yTrue, yPred)
	if err != nil {
		return ConfusionMatrix{}, err
	}

	var cm ConfusionMatrix
	for i := 0; i < n; i++ {
		yt, yp := yTrue.AtVec(i), yPred.AtVec(i)
		switch {
		case yt == 1 && yp == 1:
			cm.TP++
		case yt == 0 && yp == 0:
			cm.TN++
		case yt == 0 && yp == 1:
			cm.FP++
		case yt == 1 && yp == 0:
			cm.FN++
		}
	}
	return cm, nil
}
