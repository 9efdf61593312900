package batch

import (
	"math"
	"sort"

	"github.com/c9s/indicatorkit/pkg/config"
	"github.com/c9s/indicatorkit/pkg/indicator"
	"github.com/c9s/indicatorkit/pkg/types"
)

const (
	defaultBollingerK = 2.0
	defaultStochD     = 3
	defaultStochSD    = 3
	defaultMACDShort  = 12
	defaultMACDLong   = 26
	defaultMACDSignal = 9
	defaultAOShort    = 5
	defaultAOLong     = 34
	defaultAFInit     = 0.02
	defaultAFStep     = 0.02
	defaultAFMax      = 0.2
)

func init() {
	RegisterEvaluator("sma", seriesEvaluator(indicator.SMA[types.IndexEntry]))
	RegisterEvaluator("ema", seriesEvaluator(indicator.EMA[types.IndexEntry]))
	RegisterEvaluator("rma", seriesEvaluator(indicator.RMA[types.IndexEntry]))
	RegisterEvaluator("wma", seriesEvaluator(indicator.WMA[types.IndexEntry]))
	RegisterEvaluator("hma", seriesEvaluator(indicator.HMA[types.IndexEntry]))
	RegisterEvaluator("dema", seriesEvaluator(indicator.DEMA[types.IndexEntry]))
	RegisterEvaluator("tema", seriesEvaluator(indicator.TEMA[types.IndexEntry]))
	RegisterEvaluator("stddev", seriesEvaluator(indicator.StandardDeviation[types.IndexEntry]))
	RegisterEvaluator("rsi", seriesEvaluator(indicator.RSI[types.IndexEntry]))
	RegisterEvaluator("momentum", seriesEvaluator(indicator.Momentum[types.IndexEntry]))
	RegisterEvaluator("rci", seriesEvaluator(indicator.RCI[types.IndexEntry]))

	RegisterEvaluator("vwma", candlestickEvaluator(indicator.VWMA))
	RegisterEvaluator("atr", candlestickEvaluator(indicator.ATR))
	RegisterEvaluator("cci", candlestickEvaluator(indicator.CCI))
	RegisterEvaluator("willr", candlestickEvaluator(indicator.WilliamsPercentR))

	RegisterEvaluator("boll", evaluateBollingerBand)
	RegisterEvaluator("envelope", evaluateEnvelope)
	RegisterEvaluator("macd", evaluateMACD)
	RegisterEvaluator("ao", evaluateAwesomeOscillator)
	RegisterEvaluator("stoch", evaluateStochastics)
	RegisterEvaluator("slowstoch", evaluateSlowStochastics)
	RegisterEvaluator("dmi", evaluateDMI)
	RegisterEvaluator("psar", evaluateParabolicSAR)
	RegisterEvaluator("ichimoku", evaluateIchimoku)
	RegisterEvaluator("fractals", evaluateWilliamsFractals)
	RegisterEvaluator("heikinashi", evaluateHeikinAshi)
}

type seriesFunc func(entries []types.IndexEntry, window int) ([]types.IndexEntry, error)

type candlestickFunc func(ks []types.Candlestick, window int) ([]types.IndexEntry, error)

// seriesEvaluator feeds the source selected values of the bars to a single window indicator
func seriesEvaluator(f seriesFunc) Evaluator {
	return func(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
		series, err := sourceSeries(ks, conf.Source)
		if err != nil {
			return nil, nil, err
		}

		out, err := f(series, conf.Window)
		if err != nil {
			return nil, nil, err
		}

		columns, rows := valueResult(out)
		return columns, rows, nil
	}
}

func candlestickEvaluator(f candlestickFunc) Evaluator {
	return func(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
		out, err := f(ks, conf.Window)
		if err != nil {
			return nil, nil, err
		}

		columns, rows := valueResult(out)
		return columns, rows, nil
	}
}

func intOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func evaluateBollingerBand(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	series, err := sourceSeries(ks, conf.Source)
	if err != nil {
		return nil, nil, err
	}

	out, err := indicator.BollingerBand(series, conf.Window)
	if err != nil {
		return nil, nil, err
	}

	k := conf.K
	if k == 0 {
		k = defaultBollingerK
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.Avg, e.Sigma, e.UpperSigma(k), e.LowerSigma(k)}}
	}
	return []string{"avg", "sigma", "upper", "lower"}, rows, nil
}

func evaluateEnvelope(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	series, err := sourceSeries(ks, conf.Source)
	if err != nil {
		return nil, nil, err
	}

	out, err := indicator.EnvelopeSMA(series, conf.Window, conf.Percent)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.Basis, e.Upper, e.Lower}}
	}
	return []string{"basis", "upper", "lower"}, rows, nil
}

func evaluateMACD(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	series, err := sourceSeries(ks, conf.Source)
	if err != nil {
		return nil, nil, err
	}

	out, err := indicator.MACD(series,
		intOr(conf.Short, defaultMACDShort),
		intOr(conf.Long, defaultMACDLong),
		intOr(conf.Signal, defaultMACDSignal))
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.MACD, e.Signal, e.Histogram}}
	}
	return []string{"macd", "signal", "histogram"}, rows, nil
}

func evaluateAwesomeOscillator(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.AwesomeOscillator(ks, intOr(conf.Short, defaultAOShort), intOr(conf.Long, defaultAOLong))
	if err != nil {
		return nil, nil, err
	}

	columns, rows := valueResult(out)
	return columns, rows, nil
}

func evaluateStochastics(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.Stochastics(ks, conf.Window, intOr(conf.D, defaultStochD))
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.K, e.D}}
	}
	return []string{"k", "d"}, rows, nil
}

func evaluateSlowStochastics(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.SlowStochastics(ks, conf.Window, intOr(conf.D, defaultStochD), intOr(conf.SD, defaultStochSD))
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.K, e.D, e.SD}}
	}
	return []string{"k", "d", "sd"}, rows, nil
}

func evaluateDMI(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.DMI(ks, conf.Window)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{e.PlusDI, e.MinusDI, e.DX, e.ADX}}
	}
	return []string{"+di", "-di", "dx", "adx"}, rows, nil
}

func evaluateParabolicSAR(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.ParabolicSAR(ks,
		floatOr(conf.AFInit, defaultAFInit),
		floatOr(conf.AFStep, defaultAFStep),
		floatOr(conf.AFMax, defaultAFMax))
	if err != nil {
		return nil, nil, err
	}

	columns, rows := valueResult(out)
	return columns, rows, nil
}

// evaluateIchimoku merges the five lines into one row per timestamp, the lines without
// a value at a timestamp hold NaN
func evaluateIchimoku(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	data, err := indicator.Ichimoku(ks,
		intOr(conf.Conversion, 9),
		intOr(conf.Base, 26),
		intOr(conf.LeadingSpanB, 52),
		intOr(conf.Span, 26))
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[uint64]struct{})
	var ats []uint64
	for _, line := range [][]types.IndexEntry{data.ConversionLine, data.BaseLine, data.LeadingSpanA, data.LeadingSpanB, data.LaggingSpan} {
		for _, e := range line {
			if _, ok := seen[e.At]; !ok {
				seen[e.At] = struct{}{}
				ats = append(ats, e.At)
			}
		}
	}
	sort.Slice(ats, func(i, j int) bool { return ats[i] < ats[j] })

	orNaN := func(v *float64) float64 {
		if v == nil {
			return math.NaN()
		}
		return *v
	}

	rows := make([]Row, 0, len(ats))
	for _, at := range ats {
		e, ok := data.Get(at)
		if !ok {
			continue
		}

		rows = append(rows, Row{At: at, Values: []float64{
			orNaN(e.ConversionLine),
			orNaN(e.BaseLine),
			orNaN(e.LeadingSpanA),
			orNaN(e.LeadingSpanB),
			orNaN(e.LaggingSpan),
		}})
	}
	return []string{"conversion", "base", "spanA", "spanB", "lagging"}, rows, nil
}

func evaluateWilliamsFractals(ks []types.Candlestick, conf config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.WilliamsFractals(ks, conf.Window)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, e := range out {
		rows[i] = Row{At: e.At, Values: []float64{boolValue(e.Up), boolValue(e.Down)}}
	}
	return []string{"up", "down"}, rows, nil
}

func evaluateHeikinAshi(ks []types.Candlestick, _ config.IndicatorConfig) ([]string, []Row, error) {
	out, err := indicator.HeikinAshi(ks)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, len(out))
	for i, k := range out {
		rows[i] = Row{At: k.At, Values: []float64{k.Open, k.High, k.Low, k.Close, k.Volume}}
	}
	return []string{"open", "high", "low", "close", "volume"}, rows, nil
}
