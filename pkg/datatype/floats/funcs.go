package floats

import (
	"math"

	gonumfloats "gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the sum of the elements, 0 for an empty slice.
func Sum(arr []float64) float64 {
	return gonumfloats.Sum(arr)
}

func Average(arr []float64) float64 {
	return Sum(arr) / float64(len(arr))
}

// Highest returns the max element, -Inf for an empty slice
func Highest(arr []float64) float64 {
	if len(arr) == 0 {
		return math.Inf(-1)
	}
	return gonumfloats.Max(arr)
}

// Lowest returns the min element, +Inf for an empty slice
func Lowest(arr []float64) float64 {
	if len(arr) == 0 {
		return math.Inf(1)
	}
	return gonumfloats.Min(arr)
}

// PopStdDev returns the mean and the population standard deviation (divided by N, not N-1).
func PopStdDev(arr []float64) (mean, std float64) {
	return stat.PopMeanStdDev(arr, nil)
}

// MeanAbsDeviation returns the mean absolute deviation around the arithmetic mean.
func MeanAbsDeviation(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	avg := Average(arr)
	dev := 0.0
	for _, a := range arr {
		dev += math.Abs(a - avg)
	}
	return dev / float64(len(arr))
}

// LinearWeights returns the weights 1, 2, ..., n
func LinearWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	return weights
}

// WeightedMean returns sum(arr[i] * weights[i]) / sum(weights).
// Both slices must have the same length.
func WeightedMean(arr, weights []float64) float64 {
	return gonumfloats.Dot(arr, weights) / Sum(weights)
}
