package style

import (
	"bytes"
	"math"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicatorkit/pkg/batch"
	"github.com/c9s/indicatorkit/pkg/types"
)

func TestSignString(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "+1.5", SignString(1.5))
	assert.Equal(t, "-2", SignString(-2))
	assert.Equal(t, "0", SignString(0))
	assert.Equal(t, "106.25", DirectionColor(types.DirectionNone)("106.25"))
}

func TestRenderResult(t *testing.T) {
	color.NoColor = true

	res := &batch.Result{
		ID:      "macd",
		Name:    "macd-fast",
		Columns: []string{"macd", "signal", "histogram"},
		Rows: []batch.Row{
			{At: 1719400004, Values: []float64{-4.5, -2, -2.5}},
			{At: 1719400005, Values: []float64{1, math.NaN(), 0.5}},
		},
	}

	var buf bytes.Buffer
	RenderResult(&buf, res, NewPlainTableStyle())

	out := buf.String()
	assert.Contains(t, out, "macd-fast")
	assert.Contains(t, out, "HISTOGRAM")
	assert.Contains(t, out, "1719400004")
	assert.Contains(t, out, "-4.5")
	assert.Contains(t, out, "+0.5")
	assert.Contains(t, out, "-")
}
