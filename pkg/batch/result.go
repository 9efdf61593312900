package batch

import (
	"math"

	"github.com/c9s/indicatorkit/pkg/types"
)

// Row is one timestamp of a result, the values follow the result columns.
// A line without a value at this timestamp holds NaN.
type Row struct {
	At     uint64
	Values []float64
}

// Result is the output table of one indicator job
type Result struct {
	ID      string
	Name    string
	Columns []string
	Rows    []Row
}

func (r *Result) CsvHeader() []string {
	return append([]string{"at"}, r.Columns...)
}

func (r *Result) CsvRecords() [][]string {
	records := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rec := make([]string, 0, len(row.Values)+1)
		rec = append(rec, types.FormatAt(row.At))
		for _, v := range row.Values {
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, types.FormatFloat(v))
		}
		records = append(records, rec)
	}
	return records
}

// Last returns a copy of the result with only the last n rows, n <= 0 keeps all of them
func (r *Result) Last(n int) *Result {
	if n <= 0 || n >= len(r.Rows) {
		return r
	}

	c := *r
	c.Rows = r.Rows[len(r.Rows)-n:]
	return &c
}

func valueResult[T types.TimeValue](xs []T) ([]string, []Row) {
	rows := make([]Row, len(xs))
	for i, x := range xs {
		rows[i] = Row{At: x.GetAt(), Values: []float64{x.GetValue()}}
	}
	return []string{"value"}, rows
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var _ types.CsvFormatter = (*Result)(nil)
