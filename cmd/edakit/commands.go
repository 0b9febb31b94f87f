// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/tomtom215/edakit/internal/filter"
	"github.com/tomtom215/edakit/internal/logging"
	"github.com/tomtom215/edakit/internal/plot"
	"github.com/tomtom215/edakit/internal/source"
	"github.com/tomtom215/edakit/internal/table"
)

// errNoQuery is returned when neither --query nor source.query is set.
var errNoQuery = errors.New("no query given: pass --query or set source.query")

// analysisCommands registers the commands that load the configured query and
// analyze the result.
func analysisCommands(app *kingpin.Application) []command {
	queryCmd := app.Command("query", "Print the query result.")

	numericCmd := app.Command("numeric", "Print numeric columns, blanking values not above the threshold.")
	threshold := numericCmd.Flag("threshold", "Values must be strictly greater than this.").
		Default("0").Float64()

	uniqueCmd := app.Command("unique", "Print the distinct values of a column.")
	uniqueCol := uniqueCmd.Arg("column", "Column name.").Required().String()

	modeCmd := app.Command("mode", "Print the most repeated value of a column.")
	modeCol := modeCmd.Arg("column", "Column name.").Required().String()

	meanCmd := app.Command("mean", "Print the mean of a numeric column.")
	meanCol := meanCmd.Arg("column", "Column name.").Required().String()

	histCmd := app.Command("hist", "Print histogram bins of a numeric column.")
	histCol := histCmd.Arg("column", "Column name.").Required().String()
	bins := histCmd.Flag("bins", "Number of bins (default from config).").Int()

	boxCmd := app.Command("box", "Print box plot statistics of a numeric column.")
	boxCol := boxCmd.Arg("column", "Column name.").Required().String()
	coef := boxCmd.Flag("coef", "Whisker length in multiples of the IQR (default from config).").Float64()

	countCmd := app.Command("count", "Print value counts of a column.")
	countCol := countCmd.Arg("column", "Column name.").Required().String()

	dailyCmd := app.Command("daily", "Print per-day counts of a timestamp column.")
	dailyCol := dailyCmd.Arg("column", "Column name.").Required().String()

	histStyle := addStyleFlags(histCmd)
	boxStyle := addStyleFlags(boxCmd)
	countStyle := addStyleFlags(countCmd)
	dailyStyle := addStyleFlags(dailyCmd)

	return []command{
		{queryCmd, withTable(func(env *environment, f *filter.TableFilter) error {
			return emitTable(env, f.Table(), plot.Style{})
		})},
		{numericCmd, withTable(func(env *environment, f *filter.TableFilter) error {
			return emitTable(env, f.FilterNumericColumns(*threshold), plot.Style{})
		})},
		{uniqueCmd, withTable(func(env *environment, f *filter.TableFilter) error {
			values, err := f.UniqueValues(*uniqueCol)
			if err != nil {
				return err
			}
			col, _ := f.Table().Column(*uniqueCol)
			return emitTable(env, table.MustNew(table.NewColumn(*uniqueCol, col.Kind, values...)), plot.Style{})
		})},
		{modeCmd, withTable(func(env *environment, f *filter.TableFilter) error {
			v, err := f.MostRepeatedValue(*modeCol)
			if err != nil {
				return err
			}
			return emitValue(env, *modeCol, v)
		})},
		{meanCmd, withTable(func(env *environment, f *filter.TableFilter) error {
			v, err := f.Average(*meanCol)
			if err != nil {
				return err
			}
			return emitValue(env, *meanCol, v)
		})},
		{histCmd, withColumn(histCol, func(env *environment, col *table.Column) error {
			n := *bins
			if n == 0 {
				n = env.cfg.Plot.Bins
			}
			h, err := plot.Histogram(col, n, histStyle.style())
			if err != nil {
				return err
			}
			return emitChart(env, h, h.Table(), h.Style)
		})},
		{boxCmd, withColumn(boxCol, func(env *environment, col *table.Column) error {
			c := *coef
			if c == 0 {
				c = env.cfg.Plot.BoxCoef
			}
			b, err := plot.BoxPlot(col, c, boxStyle.style())
			if err != nil {
				return err
			}
			return emitChart(env, b, b.Table(), b.Style)
		})},
		{countCmd, withColumn(countCol, func(env *environment, col *table.Column) error {
			c, err := plot.CountPlot(col, countStyle.style())
			if err != nil {
				return err
			}
			return emitChart(env, c, c.Table(), c.Style)
		})},
		{dailyCmd, withColumn(dailyCol, func(env *environment, col *table.Column) error {
			s, err := plot.DailySeries(col, dailyStyle.style())
			if err != nil {
				return err
			}
			return emitChart(env, s, s.Table(), s.Style)
		})},
	}
}

// styleFlags are the chart presentation flags of one command.
type styleFlags struct {
	title, xLabel, yLabel *string
}

func addStyleFlags(c *kingpin.CmdClause) styleFlags {
	return styleFlags{
		title:  c.Flag("title", "Chart title.").String(),
		xLabel: c.Flag("xlabel", "X axis label.").String(),
		yLabel: c.Flag("ylabel", "Y axis label.").String(),
	}
}

func (s styleFlags) style() plot.Style {
	return plot.Style{Title: *s.title, XLabel: *s.xLabel, YLabel: *s.yLabel}
}

// withTable loads the configured query into a TableFilter before calling fn.
func withTable(fn func(env *environment, f *filter.TableFilter) error) func(context.Context, *environment) error {
	return func(ctx context.Context, env *environment) error {
		f, err := loadFilter(ctx, env)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				logging.Warn().Err(err).Msg("Failed to close table filter")
			}
		}()
		return fn(env, f)
	}
}

// withColumn loads the configured query and looks up one column for fn.
func withColumn(name *string, fn func(env *environment, col *table.Column) error) func(context.Context, *environment) error {
	return withTable(func(env *environment, f *filter.TableFilter) error {
		col, ok := f.Table().Column(*name)
		if !ok {
			return fmt.Errorf("%w: %q", filter.ErrColumnNotFound, *name)
		}
		return fn(env, col)
	})
}

// newLoader returns the source loader, behind a circuit breaker when enabled.
func newLoader(env *environment) source.Loader {
	var loader source.Loader = source.NewSQLSource()
	if env.cfg.Breaker.Enabled {
		loader = source.NewBreakerLoader(loader, &env.cfg.Breaker)
	}
	return loader
}

// loadFilter loads the configured query into a new TableFilter.
func loadFilter(ctx context.Context, env *environment) (*filter.TableFilter, error) {
	target, err := source.ParseTarget(env.cfg.Source.Target)
	if err != nil {
		return nil, err
	}
	if env.cfg.Source.Query == "" {
		return nil, errNoQuery
	}

	if timeout := env.cfg.Source.QueryTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	f := filter.NewTableFilter(nil, filter.WithLoader(newLoader(env)))
	start := time.Now()
	if err := f.LoadFromSource(ctx, target, env.cfg.Source.Query); err != nil {
		return nil, err
	}

	logging.Info().
		Str("target", target.String()).
		Str("rows", humanize.Comma(int64(f.Table().NumRows()))).
		Int("columns", f.Table().NumColumns()).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded query result")
	return f, nil
}
