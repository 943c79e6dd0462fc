package metrics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// StatsProvider supplies the statistical routines ClassificationCalculator
// delegates to: ranking metrics over probability scores and multi-class
// aggregation of precision, recall and F1.
//
// Implementations must be safe for concurrent use. LogLoss implementations
// must clip probabilities away from exactly 0 and 1 before taking logarithms.
type StatsProvider interface {
	ROCAUC(yTrue, yScore mat.Vector) (float64, error)
	LogLoss(yTrue, yProba mat.Vector) (float64, error)
	AccuracyScore(yTrue, yPred mat.Vector) (float64, error)
	PrecisionScore(yTrue, yPred mat.Vector, average Average) (float64, error)
	RecallScore(yTrue, yPred mat.Vector, average Average) (float64, error)
	F1Score(yTrue, yPred mat.Vector, average Average) (float64, error)
}

// DefaultLogLossEpsilon is the clipping margin used by GonumProvider.LogLoss.
const DefaultLogLossEpsilon = 1e-15

// GonumProvider is the default StatsProvider, built on gonum's stat and
// integrate packages.
type GonumProvider struct {
	// Epsilon clips probabilities to [Epsilon, 1-Epsilon] in LogLoss.
	Epsilon float64
}

// NewGonumProvider returns a GonumProvider using DefaultLogLossEpsilon.
func NewGonumProvider() *GonumProvider {
	return &GonumProvider{Epsilon: DefaultLogLossEpsilon}
}

var defaultProvider = NewGonumProvider()

var _ StatsProvider = (*GonumProvider)(nil)

// ROCCurve sweeps every distinct score as a cutoff. Tied scores move the
// curve diagonally, so ties earn half credit in the area.
func (p *GonumProvider) ROCCurve(yTrue, yScore mat.Vector) (fpr, tpr, thresholds []float64, err error) {
	const op = "ROCCurve"
	n, err := checkNonEmptyPair(op, yTrue, yScore)
	if err != nil {
		return nil, nil, nil, err
	}

	scores := make([]float64, n)
	classes := make([]bool, n)
	positives := 0
	for i := 0; i < n; i++ {
		label := yTrue.AtVec(i)
		if !isBinaryLabel(label) {
			return nil, nil, nil, scigoErrors.NewValidationError(
				"yTrue",
				fmt.Sprintf("must contain only binary values (0 or 1), found %f at index %d", label, i),
				label,
			)
		}
		scores[i] = yScore.AtVec(i)
		classes[i] = label == 1
		if classes[i] {
			positives++
		}
	}

	if positives == 0 || positives == n {
		return nil, nil, nil, scigoErrors.NewDegenerateMetricError(op,
			"only one class present in yTrue, ROC curve is undefined")
	}

	defer scigoErrors.Recover(&err, op)
	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, thresholds = stat.ROC(nil, scores, classes, nil)
	return fpr, tpr, thresholds, nil
}

// ROCAUC integrates the ROC curve with the trapezoid rule.
func (p *GonumProvider) ROCAUC(yTrue, yScore mat.Vector) (auc float64, err error) {
	fpr, tpr, _, err := p.ROCCurve(yTrue, yScore)
	if err != nil {
		return 0, err
	}
	defer scigoErrors.Recover(&err, "ROCAUC")
	return integrate.Trapezoidal(fpr, tpr), nil
}

// LogLoss returns the mean binary cross-entropy of yProba against yTrue.
func (p *GonumProvider) LogLoss(yTrue, yProba mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("BinaryLogLoss", yTrue, yProba)
	if err != nil {
		return 0, err
	}

	eps := p.Epsilon
	if eps <= 0 || eps >= 0.5 {
		eps = DefaultLogLossEpsilon
	}

	loss := 0.0
	for i := 0; i < n; i++ {
		y := yTrue.AtVec(i)
		if !isBinaryLabel(y) {
			return 0, scigoErrors.NewValidationError(
				"yTrue",
				fmt.Sprintf("must contain only binary values (0 or 1), found %f at index %d", y, i),
				y,
			)
		}

		// Clip prediction to avoid log(0)
		prob := math.Max(eps, math.Min(1-eps, yProba.AtVec(i)))
		if y == 1 {
			loss -= math.Log(prob)
		} else {
			loss -= math.Log(1 - prob)
		}
	}

	return loss / float64(n), nil
}

// AccuracyScore is Accuracy.
func (p *GonumProvider) AccuracyScore(yTrue, yPred mat.Vector) (float64, error) {
	return Accuracy(yTrue, yPred)
}

// PrecisionScore aggregates per-class precision according to average.
func (p *GonumProvider) PrecisionScore(yTrue, yPred mat.Vector, average Average) (float64, error) {
	if average == AverageBinary {
		return Precision(yTrue, yPred)
	}
	return p.averaged("PrecisionScore", yTrue, yPred, average, classStats.precision)
}

// RecallScore aggregates per-class recall according to average.
func (p *GonumProvider) RecallScore(yTrue, yPred mat.Vector, average Average) (float64, error) {
	if average == AverageBinary {
		return Recall(yTrue, yPred)
	}
	return p.averaged("RecallScore", yTrue, yPred, average, classStats.recall)
}

// F1Score aggregates per-class F1 according to average. For AverageMicro it
// is the harmonic mean of micro precision and micro recall.
func (p *GonumProvider) F1Score(yTrue, yPred mat.Vector, average Average) (float64, error) {
	if average == AverageBinary {
		return F1Score(yTrue, yPred)
	}
	return p.averaged("F1Score", yTrue, yPred, average, classStats.f1)
}

// classStats are the one-vs-rest counts of a single label.
type classStats struct {
	tp, fp, fn, support float64
}

// ratio returns num/den, or 0 when den is zero. A class whose own ratio is
// undefined contributes 0 to macro and weighted averages.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func (s classStats) precision() float64 { return ratio(s.tp, s.tp+s.fp) }

func (s classStats) recall() float64 { return ratio(s.tp, s.tp+s.fn) }

func (s classStats) f1() float64 {
	p, r := s.precision(), s.recall()
	return ratio(2*p*r, p+r)
}

func (p *GonumProvider) averaged(op string, yTrue, yPred mat.Vector, average Average, score func(classStats) float64) (float64, error) {
	if !average.valid() {
		return 0, scigoErrors.NewValueError(op, fmt.Sprintf("unknown average %s", average))
	}
	n, err := checkNonEmptyPair(op, yTrue, yPred)
	if err != nil {
		return 0, err
	}

	perClass := countPerClass(yTrue, yPred, n)

	switch average {
	case AverageMicro:
		var pooled classStats
		for _, s := range perClass {
			pooled.tp += s.tp
			pooled.fp += s.fp
			pooled.fn += s.fn
		}
		if pooled.tp+pooled.fp == 0 || pooled.tp+pooled.fn == 0 {
			return 0, scigoErrors.NewDegenerateMetricError(op, "pooled denominator is zero")
		}
		return score(pooled), nil

	case AverageMacro:
		scores := make([]float64, len(perClass))
		for i, s := range perClass {
			scores[i] = score(s)
		}
		return floats.Sum(scores) / float64(len(scores)), nil

	case AverageWeighted:
		scores := make([]float64, len(perClass))
		supports := make([]float64, len(perClass))
		for i, s := range perClass {
			scores[i] = score(s)
			supports[i] = s.support
		}
		total := floats.Sum(supports)
		if total == 0 {
			return 0, scigoErrors.NewDegenerateMetricError(op, "total support is zero")
		}
		return floats.Dot(scores, supports) / total, nil
	}

	return 0, scigoErrors.NewValueError(op, fmt.Sprintf("average %s is not a multi-class average", average))
}

// countPerClass returns one-vs-rest counts for every label seen in yTrue or
// yPred, in ascending label order.
func countPerClass(yTrue, yPred mat.Vector, n int) []classStats {
	labels := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		labels = append(labels, yTrue.AtVec(i), yPred.AtVec(i))
	}
	sort.Float64s(labels)
	labels = uniqueSorted(labels)

	index := make(map[float64]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	stats := make([]classStats, len(labels))
	for i := 0; i < n; i++ {
		t, pr := index[yTrue.AtVec(i)], index[yPred.AtVec(i)]
		stats[t].support++
		if t == pr {
			stats[t].tp++
			continue
		}
		stats[pr].fp++
		stats[t].fn++
	}
	return stats
}

func uniqueSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
