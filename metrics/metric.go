package metrics

import (
	"fmt"
	"sort"
	"strings"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// ClassificationMetric identifies a metric computed by ClassificationCalculator.
type ClassificationMetric int

const (
	MetricAccuracy ClassificationMetric = iota + 1
	MetricPrecision
	MetricRecall
	MetricF1
	MetricAUC
	MetricLogLoss
	MetricTP
	MetricTN
	MetricFP
	MetricFN
)

var classificationKeys = map[ClassificationMetric]string{
	MetricAccuracy:  "accuracy",
	MetricPrecision: "precision",
	MetricRecall:    "recall",
	MetricF1:        "f1",
	MetricAUC:       "auc",
	MetricLogLoss:   "logloss",
	MetricTP:        "tp",
	MetricTN:        "tn",
	MetricFP:        "fp",
	MetricFN:        "fn",
}

// String returns the identifier used by ParseClassificationMetric.
func (m ClassificationMetric) String() string {
	if key, ok := classificationKeys[m]; ok {
		return key
	}
	return fmt.Sprintf("ClassificationMetric(%d)", int(m))
}

// ParseClassificationMetric resolves a case-insensitive identifier such as
// "f1" or "AUC".
func ParseClassificationMetric(name string) (ClassificationMetric, error) {
	key := normalizeKey(name)
	for m, k := range classificationKeys {
		if k == key {
			return m, nil
		}
	}
	return 0, scigoErrors.NewUnsupportedMetricError("ParseClassificationMetric", name, sortedValues(classificationKeys))
}

// RegressionMetric identifies a metric computed by RegressionCalculator.
type RegressionMetric int

const (
	MetricMAE RegressionMetric = iota + 1
	MetricMSE
	MetricRMSE
	MetricMSLE
	MetricRMSLE
	MetricMPE
	MetricMAPE
)

var regressionKeys = map[RegressionMetric]string{
	MetricMAE:   "mae",
	MetricMSE:   "mse",
	MetricRMSE:  "rmse",
	MetricMSLE:  "msle",
	MetricRMSLE: "rmsle",
	MetricMPE:   "mpe",
	MetricMAPE:  "mape",
}

// String returns the identifier used by ParseRegressionMetric.
func (m RegressionMetric) String() string {
	if key, ok := regressionKeys[m]; ok {
		return key
	}
	return fmt.Sprintf("RegressionMetric(%d)", int(m))
}

// ParseRegressionMetric resolves a case-insensitive identifier such as "rmse".
func ParseRegressionMetric(name string) (RegressionMetric, error) {
	key := normalizeKey(name)
	for m, k := range regressionKeys {
		if k == key {
			return m, nil
		}
	}
	return 0, scigoErrors.NewUnsupportedMetricError("ParseRegressionMetric", name, sortedValues(regressionKeys))
}

// Average selects how per-class precision, recall and F1 are aggregated.
type Average int

const (
	// AverageBinary reports the score of the positive label 1 only.
	AverageBinary Average = iota
	// AverageMicro pools TP, FP and FN over all classes before dividing.
	AverageMicro
	// AverageMacro is the unweighted mean of per-class scores.
	AverageMacro
	// AverageWeighted is the mean of per-class scores weighted by true support.
	AverageWeighted
)

var averageKeys = map[Average]string{
	AverageBinary:   "binary",
	AverageMicro:    "micro",
	AverageMacro:    "macro",
	AverageWeighted: "weighted",
}

func (a Average) String() string {
	if key, ok := averageKeys[a]; ok {
		return key
	}
	return fmt.Sprintf("Average(%d)", int(a))
}

func (a Average) valid() bool {
	_, ok := averageKeys[a]
	return ok
}

// ParseAverage resolves "binary", "micro", "macro" or "weighted".
func ParseAverage(name string) (Average, error) {
	key := normalizeKey(name)
	for a, k := range averageKeys {
		if k == key {
			return a, nil
		}
	}
	return 0, scigoErrors.NewValueError("ParseAverage",
		fmt.Sprintf("unknown average %q, expected one of: %s", name, strings.Join(sortedValues(averageKeys), ", ")))
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortedValues[K comparable](m map[K]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
