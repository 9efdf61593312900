package style

import (
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/indicatorkit/pkg/batch"
	"github.com/c9s/indicatorkit/pkg/types"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle has no colors, used when the output is not a terminal
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Format = table.FormatOptionsDefault
	return &style
}

// RenderResult writes the result rows as a table titled with the result name.
// The oscillating columns are colored by their sign, heikin-ashi rows by their direction.
func RenderResult(w io.Writer, res *batch.Result, tableStyle *table.Style) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*tableStyle)
	t.SetTitle(res.Name)

	header := table.Row{"at"}
	for _, c := range res.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	signed := signedColumns(res)
	for _, row := range res.Rows {
		direction := rowDirection(res, row)

		r := table.Row{types.FormatAt(row.At)}
		for i, v := range row.Values {
			var cell string
			switch {
			case math.IsNaN(v):
				cell = "-"
			case signed[i]:
				cell = SignString(v)
			case direction != types.DirectionNone:
				cell = DirectionColor(direction)(types.FormatFloat(v))
			default:
				cell = types.FormatFloat(v)
			}
			r = append(r, cell)
		}
		t.AppendRow(r)
	}

	t.Render()
}

// signedColumns marks the columns that oscillate around zero
func signedColumns(res *batch.Result) map[int]bool {
	signed := make(map[int]bool)
	for i, c := range res.Columns {
		switch {
		case c == "histogram" || c == "macd":
			signed[i] = true
		case c == "value" && (res.ID == "ao" || res.ID == "momentum"):
			signed[i] = true
		}
	}
	return signed
}

func rowDirection(res *batch.Result, row batch.Row) types.Direction {
	if res.ID != "heikinashi" || len(row.Values) < 4 {
		return types.DirectionNone
	}

	k := types.Candlestick{At: row.At, Open: row.Values[0], Close: row.Values[3]}
	return k.Direction()
}
