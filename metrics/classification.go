package metrics

import (
	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// AUC calculates the Area Under the ROC Curve for binary classification.
//
// The AUC represents the probability that a classifier will rank a randomly
// chosen positive instance higher than a randomly chosen negative instance.
// AUC values range from 0 to 1, where:
//   - 0.5 indicates random guessing
//   - 1.0 indicates perfect classification
//   - 0.0 indicates perfectly wrong classification
//
// Parameters:
//   - yTrue: Ground truth binary labels (0 or 1)
//   - yScore: Predicted probabilities or decision scores
//
// Returns:
//   - The AUC score
//   - An error if inputs are invalid, or ErrDegenerateMetric when yTrue
//     contains a single class
//
// Example:
//
//	yTrue := mat.NewVecDense(4, []float64{0, 0, 1, 1})
//	yScore := mat.NewVecDense(4, []float64{0.1, 0.4, 0.35, 0.8})
//	auc, err := AUC(yTrue, yScore)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("AUC: %f\n", auc) // Output: AUC: 0.75
func AUC(yTrue, yScore mat.Vector) (float64, error) {
	return defaultProvider.ROCAUC(yTrue, yScore)
}

// ROCCurve returns the points of the ROC curve of yScore against the binary
// labels in yTrue, ordered by increasing false positive rate. thresholds[i]
// is the cutoff producing (fpr[i], tpr[i]); the first point is (0, 0).
func ROCCurve(yTrue, yScore mat.Vector) (fpr, tpr, thresholds []float64, err error) {
	return defaultProvider.ROCCurve(yTrue, yScore)
}

// BinaryLogLoss calculates the binary cross-entropy loss for binary classification.
//
// Binary log loss, also known as logistic loss or cross-entropy loss,
// measures the performance of a classification model whose output is a
// probability value between 0 and 1. Probabilities are clipped to
// [1e-15, 1-1e-15] before taking logarithms.
//
// Parameters:
//   - yTrue: Ground truth binary labels (0 or 1)
//   - yProba: Predicted probabilities of the positive class
//
// Returns:
//   - The average binary log loss
//   - An error if inputs are invalid
func BinaryLogLoss(yTrue, yProba mat.Vector) (float64, error) {
	return defaultProvider.LogLoss(yTrue, yProba)
}

// ClassificationError calculates the classification error rate.
//
// The error rate is the fraction of incorrect predictions. Labels may be any
// values; two positions agree when their values are equal.
//
// Example:
//
//	yTrue := mat.NewVecDense(5, []float64{0, 1, 2, 1, 0})
//	yPred := mat.NewVecDense(5, []float64{0, 1, 1, 1, 0})
//	errorRate, err := ClassificationError(yTrue, yPred)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Error Rate: %f\n", errorRate) // Output: Error Rate: 0.2
func ClassificationError(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("ClassificationError", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// Count misclassifications
	errors := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			errors++
		}
	}

	return float64(errors) / float64(n), nil
}

// Accuracy calculates the classification accuracy.
//
// Accuracy is the fraction of positions where yTrue[i] == yPred[i].
// It fails with ErrEmptyData on empty input.
func Accuracy(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// Precision calculates TP / (TP + FP) for the positive label 1.
//
// Fails with ErrDegenerateMetric when there are no positive predictions,
// leaving the fallback to the caller.
func Precision(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return precisionFromCounts("Precision", cm)
}

// Recall calculates TP / (TP + FN) for the positive label 1.
//
// Fails with ErrDegenerateMetric when yTrue holds no positive labels.
func Recall(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return recallFromCounts("Recall", cm)
}

// F1Score calculates the harmonic mean of Precision and Recall, 2pr/(p+r).
//
// Degenerate precision or recall is propagated, and p+r == 0 (no true
// positives) is itself reported as ErrDegenerateMetric.
//
// Example:
//
//	yTrue := mat.NewVecDense(6, []float64{1, 1, 1, 1, 0, 0})
//	yPred := mat.NewVecDense(6, []float64{1, 1, 0, 0, 1, 0})
//	f1, _ := F1Score(yTrue, yPred) // p = 2/3, r = 1/2, f1 = 4/7
func F1Score(yTrue, yPred mat.Vector) (float64, error) {
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return f1FromCounts("F1Score", cm)
}

func precisionFromCounts(op string, cm ConfusionMatrix) (float64, error) {
	if cm.TP+cm.FP == 0 {
		return 0, scigoErrors.NewDegenerateMetricError(op, "no positive predictions (TP+FP is zero)")
	}
	return float64(cm.TP) / float64(cm.TP+cm.FP), nil
}

func recallFromCounts(op string, cm ConfusionMatrix) (float64, error) {
	if cm.TP+cm.FN == 0 {
		return 0, scigoErrors.NewDegenerateMetricError(op, "no positive ground truth (TP+FN is zero)")
	}
	return float64(cm.TP) / float64(cm.TP+cm.FN), nil
}

func f1FromCounts(op string, cm ConfusionMatrix) (float64, error) {
	p, err := precisionFromCounts(op, cm)
	if err != nil {
		return 0, err
	}
	r, err := recallFromCounts(op, cm)
	if err != nil {
		return 0, err
	}
	return harmonicMean(op, p, r)
}

func harmonicMean(op string, p, r float64) (float64, error) {
	if p+r == 0 {
		return 0, scigoErrors.NewDegenerateMetricError(op, "precision + recall is zero")
	}
	return 2 * p * r / (p + r), nil
}
