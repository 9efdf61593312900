package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 120.0, Average([]float64{110.0, 130.0, 120.0}))
	assert.Equal(t, 0.0, Sum(nil))
}

func TestHighestLowest(t *testing.T) {
	arr := []float64{10.0, 15.0, 12.0, 9.0, 13.0}
	assert.Equal(t, 15.0, Highest(arr))
	assert.Equal(t, 9.0, Lowest(arr))
	assert.True(t, math.IsInf(Highest(nil), -1))
	assert.True(t, math.IsInf(Lowest(nil), 1))
}

/*
python:

import numpy as np
np.std([2, 4, 4, 4, 5, 5, 7, 9])  # ddof=0
*/
func TestPopStdDev(t *testing.T) {
	mean, std := PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.InDelta(t, 2.0, std, 1e-9)
}

func TestMeanAbsDeviation(t *testing.T) {
	assert.InDelta(t, 1.5, MeanAbsDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, MeanAbsDeviation(nil))
}

func TestWeightedMean(t *testing.T) {
	weights := LinearWeights(3)
	assert.Equal(t, []float64{1, 2, 3}, weights)
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, WeightedMean([]float64{1, 2, 3}, weights), 1e-9)
}
