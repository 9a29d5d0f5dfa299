package mtrng

import "math"

// meanVariance returns the mean and the population variance of data.
func meanVariance(data []float64) (mean, variance float64) {
	if len(data) == 0 {
		return 0, -1
	}
	n := float64(len(data))
	var sum float64
	for _, value := range data {
		sum += value
	}
	mean = sum / n
	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	return mean, variance
}

// chiSquare computes the Pearson chi-square statistic Σ (observed_i - expected)^2 / expected.
// expected is the expected count per bin and must be > 0.
func chiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// chiSquarePValue returns the upper-tail p-value P(χ² ≥ x2) for df degrees of freedom.
// For even df it evaluates the closed-form series
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!,  m = df/2
//
// otherwise it uses the Wilson–Hilferty cube-root approximation.
func chiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	if df%2 == 0 {
		m := df / 2
		sum, term := 1.0, 1.0
		for j := 1; j < m; j++ {
			term *= x2 / (2.0 * float64(j))
			sum += term
		}
		return math.Exp(-x2/2.0) * sum
	}
	nu := float64(df)
	z := (math.Pow(x2/nu, 1.0/3.0) - (1.0 - 2.0/(9.0*nu))) / math.Sqrt(2.0/(9.0*nu))
	return 0.5 * (1.0 - math.Erf(z/math.Sqrt2))
}
