package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/indicatorkit/pkg/batch"
	"github.com/c9s/indicatorkit/pkg/cmd/cmdutil"
	"github.com/c9s/indicatorkit/pkg/config"
	"github.com/c9s/indicatorkit/pkg/datasource/csvsource"
	"github.com/c9s/indicatorkit/pkg/envvar"
	"github.com/c9s/indicatorkit/pkg/style"
	"github.com/c9s/indicatorkit/pkg/types"
	"github.com/c9s/indicatorkit/pkg/util"
)

const (
	OutputTable = "table"
	OutputCSV   = "csv"
)

type calcOptions struct {
	Output string
	Last   int

	// TableStyle is used by the table output, nil picks one from the terminal
	TableStyle *table.Style
}

// go run ./cmd/indicatorkit calc --config indicators.yaml --last 10
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "compute the configured indicators over the candlestick csv input",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		if configFile == "" {
			return errors.New("--config option is required")
		}

		conf, err := config.Load(configFile)
		if err != nil {
			return err
		}

		parallelism, err := cmd.Flags().GetInt("parallelism")
		if err != nil {
			return err
		}

		if parallelism == 0 {
			parallelism, _ = envvar.Int("INDICATORKIT_PARALLELISM")
		}

		if parallelism > 0 {
			conf.Parallelism = parallelism
		}

		var opts calcOptions
		if opts.Output, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}

		if opts.Last, err = cmd.Flags().GetInt("last"); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return calc(ctx, cmd.OutOrStdout(), conf, opts)
	},
}

func init() {
	cmdutil.OutputFlags(calcCmd.Flags())
	RootCmd.AddCommand(calcCmd)
}

// calc reads the input bars, evaluates every indicator and prints the results.
// The results of the succeeded indicators are printed even if some indicators failed.
func calc(ctx context.Context, w io.Writer, conf *config.Config, opts calcOptions) error {
	switch opts.Output {
	case OutputTable, OutputCSV:
	default:
		return fmt.Errorf("unsupported output format %q, valid formats are %s and %s", opts.Output, OutputTable, OutputCSV)
	}

	candles, err := readInput(conf.Input)
	if err != nil {
		return err
	}

	if len(candles) == 0 {
		log.Warnf("no candlesticks found in %v", conf.Input.Path)
	}

	log.Infof("evaluating %d indicators over %d candlesticks", len(conf.Indicators), len(candles))

	results, runErr := batch.NewRunner(conf.Parallelism).Run(ctx, candles, conf.Indicators)
	util.LogErrors(runErr, "indicator evaluation failed")

	if err := printResults(w, results, opts); err != nil {
		return err
	}

	return runErr
}

func readInput(input config.InputConfig) ([]types.Candlestick, error) {
	maker, err := csvsource.ReaderMakerByFormat(input.Format)
	if err != nil {
		return nil, err
	}

	var candles []types.Candlestick
	for _, p := range input.Path {
		ks, err := csvsource.ReadCandlesticksFromCSVWithDecoder(p, maker)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read candlesticks from %s", p)
		}

		candles = append(candles, ks...)
	}

	return candles, nil
}

func printResults(w io.Writer, results []*batch.Result, opts calcOptions) error {
	tableStyle := opts.TableStyle
	if tableStyle == nil {
		tableStyle = terminalTableStyle()
	}

	first := true
	for _, res := range results {
		// failed indicators leave a nil result
		if res == nil {
			continue
		}

		res = res.Last(opts.Last)

		switch opts.Output {
		case OutputTable:
			style.RenderResult(w, res, tableStyle)

		case OutputCSV:
			if !first {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "# %s\n", res.Name)
			if err := csvsource.WriteEntries(w, res); err != nil {
				return errors.Wrapf(err, "failed to write %s", res.Name)
			}
		}

		first = false
	}

	return nil
}

func terminalTableStyle() *table.Style {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return style.NewDefaultTableStyle()
	}

	return style.NewPlainTableStyle()
}
