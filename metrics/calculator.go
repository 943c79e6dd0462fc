package metrics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// ClassificationOption configures a ClassificationCalculator.
type ClassificationOption func(*ClassificationCalculator)

// WithProvider replaces the StatsProvider used for AUC, log-loss, accuracy
// and non-binary averages. A nil provider is ignored.
func WithProvider(p StatsProvider) ClassificationOption {
	return func(c *ClassificationCalculator) {
		if p != nil {
			c.provider = p
		}
	}
}

// ComputeOption supplies per-call inputs to ClassificationCalculator.
type ComputeOption func(*computeConfig)

type computeConfig struct {
	proba   mat.Vector
	average Average
}

// WithProbabilities supplies the positive-class probability scores required
// by MetricAUC and MetricLogLoss. Other metrics ignore them.
func WithProbabilities(yProba mat.Vector) ComputeOption {
	return func(cfg *computeConfig) {
		cfg.proba = yProba
	}
}

// WithAverage selects the aggregation for precision, recall and F1. Other
// metrics ignore it. The default is AverageBinary.
func WithAverage(average Average) ComputeOption {
	return func(cfg *computeConfig) {
		cfg.average = average
	}
}

type classificationEntry struct {
	description string
	compute     func(yTrue, yPred mat.Vector, cfg computeConfig) (float64, error)
}

// ClassificationCalculator resolves a ClassificationMetric to a score.
//
// The registry is fixed at construction and never modified, so a calculator
// can be shared between goroutines.
type ClassificationCalculator struct {
	provider StatsProvider
	registry map[ClassificationMetric]classificationEntry
}

// NewClassificationCalculator creates a calculator backed by GonumProvider
// unless WithProvider is given.
func NewClassificationCalculator(opts ...ClassificationOption) *ClassificationCalculator {
	c := &ClassificationCalculator{provider: defaultProvider}
	for _, opt := range opts {
		opt(c)
	}

	c.registry = map[ClassificationMetric]classificationEntry{
		MetricAccuracy:  {"Accuracy", c.accuracy},
		MetricPrecision: {"Precision", c.precision},
		MetricRecall:    {"Recall", c.recall},
		MetricF1:        {"F1 Score", c.f1},
		MetricAUC:       {"Area Under the ROC Curve", c.auc},
		MetricLogLoss:   {"Logarithmic Loss", c.logLoss},
		MetricTP:        {"True Positives", c.count(MetricTP)},
		MetricTN:        {"True Negatives", c.count(MetricTN)},
		MetricFP:        {"False Positives", c.count(MetricFP)},
		MetricFN:        {"False Negatives", c.count(MetricFN)},
	}
	return c
}

// Metrics returns the identifiers this calculator supports, sorted.
func (c *ClassificationCalculator) Metrics() []string {
	names := make([]string, 0, len(c.registry))
	for m := range c.registry {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

// Describe returns the human-readable name of metric, or false if the
// calculator does not support it.
func (c *ClassificationCalculator) Describe(metric ClassificationMetric) (string, bool) {
	entry, ok := c.registry[metric]
	return entry.description, ok
}

// Compute calculates metric over yTrue and yPred.
//
// Precision, recall and F1 with AverageBinary are derived from a single
// CountConfusion pass and fail with ErrDegenerateMetric on a zero
// denominator. Other averages are delegated to the StatsProvider. MetricAUC
// and MetricLogLoss fail with ErrMissingProbability unless WithProbabilities
// is given. MetricTP, MetricTN, MetricFP and MetricFN return raw counts.
//
// Example:
//
//	calc := metrics.NewClassificationCalculator()
//	f1, err := calc.Compute(metrics.MetricF1, yTrue, yPred)
//	macro, err := calc.Compute(metrics.MetricF1, yTrue, yPred,
//	    metrics.WithAverage(metrics.AverageMacro))
func (c *ClassificationCalculator) Compute(metric ClassificationMetric, yTrue, yPred mat.Vector, opts ...ComputeOption) (float64, error) {
	const op = "ClassificationCalculator.Compute"
	entry, ok := c.registry[metric]
	if !ok {
		return 0, scigoErrors.NewUnsupportedMetricError(op, metric.String(), c.Metrics())
	}

	cfg := computeConfig{average: AverageBinary}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.average.valid() {
		return 0, scigoErrors.NewValueError(op, fmt.Sprintf("unknown average %s", cfg.average))
	}

	if _, err := checkPair(op, yTrue, yPred); err != nil {
		return 0, err
	}

	return entry.compute(yTrue, yPred, cfg)
}

// ComputeByName parses name with ParseClassificationMetric and calls Compute.
func (c *ClassificationCalculator) ComputeByName(name string, yTrue, yPred mat.Vector, opts ...ComputeOption) (float64, error) {
	metric, err := ParseClassificationMetric(name)
	if err != nil {
		return 0, scigoErrors.NewUnsupportedMetricError("ClassificationCalculator.ComputeByName", name, c.Metrics())
	}
	return c.Compute(metric, yTrue, yPred, opts...)
}

// Count returns the raw confusion count selected by metric, which must be one
// of MetricTP, MetricTN, MetricFP or MetricFN.
func (c *ClassificationCalculator) Count(metric ClassificationMetric, yTrue, yPred mat.Vector) (int, error) {
	switch metric {
	case MetricTP, MetricTN, MetricFP, MetricFN:
	default:
		return 0, scigoErrors.NewUnsupportedMetricError("ClassificationCalculator.Count", metric.String(),
			[]string{MetricFN.String(), MetricFP.String(), MetricTN.String(), MetricTP.String()})
	}

	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	switch metric {
	case MetricTP:
		return cm.TP, nil
	case MetricTN:
		return cm.TN, nil
	case MetricFP:
		return cm.FP, nil
	}
	return cm.FN, nil
}

// Evaluate computes each requested metric in turn and returns the scores keyed
// by identifier. It stops at the first failure, wrapping it with the metric
// name. With no metrics listed, every registered metric is computed, except
// that MetricAUC and MetricLogLoss are skipped when no probabilities are
// supplied.
func (c *ClassificationCalculator) Evaluate(yTrue, yPred mat.Vector, metrics []ClassificationMetric, opts ...ComputeOption) (map[string]float64, error) {
	if len(metrics) == 0 {
		var cfg computeConfig
		for _, opt := range opts {
			opt(&cfg)
		}
		for m := MetricAccuracy; m <= MetricFN; m++ {
			if (m == MetricAUC || m == MetricLogLoss) && cfg.proba == nil {
				continue
			}
			metrics = append(metrics, m)
		}
	}

	results := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		v, err := c.Compute(m, yTrue, yPred, opts...)
		if err != nil {
			return nil, scigoErrors.Wrapf(err, "evaluating %s", m)
		}
		results[m.String()] = v
	}
	return results, nil
}

func (c *ClassificationCalculator) accuracy(yTrue, yPred mat.Vector, _ computeConfig) (float64, error) {
	if vecLen(yTrue) == 0 {
		return 0, scigoErrors.NewEmptyInputError("accuracy")
	}
	return c.provider.AccuracyScore(yTrue, yPred)
}

func (c *ClassificationCalculator) precision(yTrue, yPred mat.Vector, cfg computeConfig) (float64, error) {
	if cfg.average != AverageBinary {
		return c.provider.PrecisionScore(yTrue, yPred, cfg.average)
	}
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return precisionFromCounts("precision", cm)
}

func (c *ClassificationCalculator) recall(yTrue, yPred mat.Vector, cfg computeConfig) (float64, error) {
	if cfg.average != AverageBinary {
		return c.provider.RecallScore(yTrue, yPred, cfg.average)
	}
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return recallFromCounts("recall", cm)
}

func (c *ClassificationCalculator) f1(yTrue, yPred mat.Vector, cfg computeConfig) (float64, error) {
	if cfg.average != AverageBinary {
		return c.provider.F1Score(yTrue, yPred, cfg.average)
	}
	cm, err := CountConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return f1FromCounts("f1", cm)
}

func (c *ClassificationCalculator) auc(yTrue, _ mat.Vector, cfg computeConfig) (float64, error) {
	if cfg.proba == nil {
		return 0, scigoErrors.NewMissingProbabilityError("auc", MetricAUC.String())
	}
	if _, err := checkPair("auc", yTrue, cfg.proba); err != nil {
		return 0, err
	}
	return c.provider.ROCAUC(yTrue, cfg.proba)
}

func (c *ClassificationCalculator) logLoss(yTrue, _ mat.Vector, cfg computeConfig) (float64, error) {
	if cfg.proba == nil {
		return 0, scigoErrors.NewMissingProbabilityError("logloss", MetricLogLoss.String())
	}
	if _, err := checkPair("logloss", yTrue, cfg.proba); err != nil {
		return 0, err
	}
	return c.provider.LogLoss(yTrue, cfg.proba)
}

func (c *ClassificationCalculator) count(metric ClassificationMetric) func(yTrue, yPred mat.Vector, cfg computeConfig) (float64, error) {
	return func(yTrue, yPred mat.Vector, _ computeConfig) (float64, error) {
		n, err := c.Count(metric, yTrue, yPred)
		return float64(n), err
	}
}

var regressionNames = map[RegressionMetric]string{
	MetricMAE:   "Mean Absolute Error",
	MetricMSE:   "Mean Squared Error",
	MetricRMSE:  "Root Mean Squared Error",
	MetricMSLE:  "Mean Squared Logarithmic Error",
	MetricRMSLE: "Root Mean Squared Logarithmic Error",
	MetricMPE:   "Mean Percentage Error",
	MetricMAPE:  "Mean Absolute Percentage Error",
}

// RegressionCalculator resolves a RegressionMetric to an error statistic.
// Only the requested formula is evaluated.
type RegressionCalculator struct {
	registry map[RegressionMetric]string
}

// NewRegressionCalculator creates a RegressionCalculator.
func NewRegressionCalculator() *RegressionCalculator {
	registry := make(map[RegressionMetric]string, len(regressionNames))
	for m, name := range regressionNames {
		registry[m] = name
	}
	return &RegressionCalculator{registry: registry}
}

// Metrics returns the identifiers this calculator supports, sorted.
func (c *RegressionCalculator) Metrics() []string {
	names := make([]string, 0, len(c.registry))
	for m := range c.registry {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

// Describe returns the human-readable name of metric, e.g. "Mean Absolute Error".
func (c *RegressionCalculator) Describe(metric RegressionMetric) (string, bool) {
	name, ok := c.registry[metric]
	return name, ok
}

// Compute calculates metric over yTrue and yPred.
//
// RMSE and RMSLE are true square roots of MSE and MSLE. MSLE and RMSLE fail
// with ErrInvalidDomain for values <= -1; MPE and MAPE fail with
// ErrDivisionByZero when a yTrue value is zero.
//
// Example:
//
//	calc := metrics.NewRegressionCalculator()
//	rmse, err := calc.Compute(metrics.MetricRMSE, yTrue, yPred)
func (c *RegressionCalculator) Compute(metric RegressionMetric, yTrue, yPred mat.Vector) (float64, error) {
	if _, ok := c.registry[metric]; !ok {
		return 0, scigoErrors.NewUnsupportedMetricError("RegressionCalculator.Compute", metric.String(), c.Metrics())
	}

	switch metric {
	case MetricMAE:
		return MAE(yTrue, yPred)
	case MetricMSE:
		return MSE(yTrue, yPred)
	case MetricRMSE:
		return RMSE(yTrue, yPred)
	case MetricMSLE:
		return MSLE(yTrue, yPred)
	case MetricRMSLE:
		return RMSLE(yTrue, yPred)
	case MetricMPE:
		return MPE(yTrue, yPred)
	case MetricMAPE:
		return MAPE(yTrue, yPred)
	}
	return 0, scigoErrors.NewUnsupportedMetricError("RegressionCalculator.Compute", metric.String(), c.Metrics())
}

// ComputeByName parses name with ParseRegressionMetric and calls Compute.
func (c *RegressionCalculator) ComputeByName(name string, yTrue, yPred mat.Vector) (float64, error) {
	metric, err := ParseRegressionMetric(name)
	if err != nil {
		return 0, scigoErrors.NewUnsupportedMetricError("RegressionCalculator.ComputeByName", name, c.Metrics())
	}
	return c.Compute(metric, yTrue, yPred)
}

// Evaluate computes each requested metric in turn, or every registered
// metric when none are listed, stopping at the first failure.
func (c *RegressionCalculator) Evaluate(yTrue, yPred mat.Vector, metrics ...RegressionMetric) (map[string]float64, error) {
	if len(metrics) == 0 {
		for m := MetricMAE; m <= MetricMAPE; m++ {
			metrics = append(metrics, m)
		}
	}

	results := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		v, err := c.Compute(m, yTrue, yPred)
		if err != nil {
			return nil, scigoErrors.Wrapf(err, "evaluating %s", m)
		}
		results[m.String()] = v
	}
	return results, nil
}
