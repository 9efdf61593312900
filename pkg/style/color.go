package style

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/c9s/indicatorkit/pkg/types"
)

var (
	GreenColor = color.New(color.FgGreen).SprintFunc()
	RedColor   = color.New(color.FgRed).SprintFunc()
)

// SignString prefixes positive values with + and colors them green, negative values red
func SignString(v float64) string {
	s := types.FormatFloat(v)
	switch {
	case v > 0:
		return GreenColor("+" + s)
	case v < 0:
		return RedColor(s)
	}
	return s
}

// DirectionColor returns the color function of a bullish or bearish bar
func DirectionColor(d types.Direction) func(a ...interface{}) string {
	switch d {
	case types.DirectionUp:
		return GreenColor
	case types.DirectionDown:
		return RedColor
	}
	return fmt.Sprint
}
