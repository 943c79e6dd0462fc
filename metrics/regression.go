package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// MSE calculates the Mean Squared Error between true and predicted values.
//
// MSE measures the average squared differences between predictions and actual
// values. Lower values indicate better model performance. MSE is sensitive to
// outliers due to the squared differences.
//
// Parameters:
//   - yTrue: True target values as a vector
//   - yPred: Predicted values as a vector
//
// Returns:
//   - float64: MSE value (non-negative)
//   - error: nil if successful, otherwise an error describing the failure
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//
// Example:
//
//	mse, err := metrics.MSE(yTrue, yPred)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MSE: %.4f\n", mse)
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE calculates the Root Mean Squared Error between true and predicted values.
//
// RMSE is the square root of MSE, providing error measurement in the same units
// as the target variable.
//
// Example:
//
//	rmse, err := metrics.RMSE(yTrue, yPred)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("RMSE: %.4f\n", rmse)
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE calculates the Mean Absolute Error between true and predicted values.
//
// MAE measures the average absolute differences between predictions and actual
// values. MAE is more robust to outliers compared to MSE as it doesn't square
// the differences.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
func MAE(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// MSLE calculates the Mean Squared Logarithmic Error,
// (1/n) * Σ(ln(1+yTrue) - ln(1+yPred))².
//
// Every value of both vectors must be greater than -1.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//   - ErrInvalidDomain: if any value is <= -1
func MSLE(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("MSLE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		yt, yp := yTrue.AtVec(i), yPred.AtVec(i)
		if !(yt > -1) {
			return 0, scigoErrors.NewInvalidDomainError("yTrue", i, yt)
		}
		if !(yp > -1) {
			return 0, scigoErrors.NewInvalidDomainError("yPred", i, yp)
		}
		diff := math.Log1p(yt) - math.Log1p(yp)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSLE calculates the Root Mean Squared Logarithmic Error, the square root of MSLE.
func RMSLE(yTrue, yPred mat.Vector) (float64, error) {
	msle, err := MSLE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(msle), nil
}

// MPE calculates the Mean Percentage Error, (1/n) * Σ(yTrue - yPred)/yTrue,
// as a fraction. Positive values mean the model under-predicts on average.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//   - ErrDivisionByZero: if any yTrue value is zero
func MPE(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("MPE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		if yt == 0 {
			return 0, scigoErrors.NewDivisionByZeroError("yTrue", i)
		}
		sum += (yt - yPred.AtVec(i)) / yt
	}

	return sum / float64(n), nil
}

// MAPE calculates the Mean Absolute Percentage Error,
// (1/n) * Σ|yTrue - yPred|/yTrue, as a fraction (0.1 means 10%).
//
// The denominator is yTrue itself, not its absolute value, so negative
// ground truth contributes negative terms.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//   - ErrDivisionByZero: if any yTrue value is zero
//
// Example:
//
//	mape, err := metrics.MAPE(yTrue, yPred)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MAPE: %.2f%%\n", mape*100)
func MAPE(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("MAPE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		if yt == 0 {
			return 0, scigoErrors.NewDivisionByZeroError("yTrue", i)
		}
		sum += math.Abs(yt-yPred.AtVec(i)) / yt
	}

	return sum / float64(n), nil
}

// R2Score calculates the coefficient of determination (R²) score.
//
// R² represents the proportion of variance in the target variable that is
// predictable from the model. 1 indicates perfect predictions, 0 indicates
// predictions no better than the mean, and negative values indicate worse
// than mean predictions.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//   - ErrDegenerateMetric: if all yTrue values are identical (no variance)
func R2Score(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	// Total Sum of Squares (TSS) and Residual Sum of Squares (RSS)
	var tss, rss float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		res := yt - yPred.AtVec(i)
		tss += (yt - yMean) * (yt - yMean)
		rss += res * res
	}

	if tss == 0 {
		return 0, scigoErrors.NewDegenerateMetricError("R2Score", "total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}

// ExplainedVarianceScore calculates 1 - Var(yTrue - yPred) / Var(yTrue).
//
// Unlike R², it does not penalize a constant offset in the predictions.
//
// Errors:
//   - ErrEmptyData: if input vectors are empty
//   - ErrLengthMismatch: if yTrue and yPred have different lengths
//   - ErrDegenerateMetric: if yTrue has no variance
func ExplainedVarianceScore(yTrue, yPred mat.Vector) (float64, error) {
	n, err := checkNonEmptyPair("ExplainedVarianceScore", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yTrueMean, diffMean float64
	for i := 0; i < n; i++ {
		yTrueMean += yTrue.AtVec(i)
		diffMean += yTrue.AtVec(i) - yPred.AtVec(i)
	}
	yTrueMean /= float64(n)
	diffMean /= float64(n)

	var varYTrue, varDiff float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		diff := yt - yPred.AtVec(i)
		varYTrue += (yt - yTrueMean) * (yt - yTrueMean)
		varDiff += (diff - diffMean) * (diff - diffMean)
	}

	if varYTrue == 0 {
		return 0, scigoErrors.NewDegenerateMetricError("ExplainedVarianceScore", "no variance in yTrue")
	}

	// The 1/n factors cancel.
	return 1 - varDiff/varYTrue, nil
}
