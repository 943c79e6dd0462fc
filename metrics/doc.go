// Package metrics provides evaluation metrics for machine learning models.
//
// This package implements standard evaluation metrics for classification and
// regression tasks:
//
// Classification Metrics:
//   - Accuracy and ClassificationError
//   - Precision, Recall and F1Score built on confusion counts (TP, TN, FP, FN)
//   - AUC: area under the ROC curve, computed from probability scores
//   - BinaryLogLoss: cross-entropy of probability scores
//
// Regression Metrics:
//   - MAE, MSE, RMSE: absolute and squared errors
//   - MSLE, RMSLE: squared errors of ln(1+y)
//   - MPE, MAPE: signed and absolute errors relative to the ground truth
//   - R2Score and ExplainedVarianceScore
//
// All inputs are gonum vectors (mat.Vector). NewVector builds one from a plain
// slice, including an empty slice.
//
// Two calculators dispatch a metric identifier to one of the functions above:
//
//	calc := metrics.NewRegressionCalculator()
//	rmse, err := calc.Compute(metrics.MetricRMSE, yTrue, yPred)
//
//	clf := metrics.NewClassificationCalculator()
//	auc, err := clf.Compute(metrics.MetricAUC, yTrue, yPred,
//	    metrics.WithProbabilities(yProba))
//
// Identifiers coming from configuration or user input are parsed at the
// boundary with ParseRegressionMetric and ParseClassificationMetric, or passed
// to ComputeByName. Unknown names fail with an error matching
// errors.ErrUnsupportedMetric.
//
// Every function is a pure computation: nothing is cached, logged or mutated,
// and calculators can be shared between goroutines. Failures are returned
// immediately; no metric ever substitutes a default for an undefined value.
package metrics
