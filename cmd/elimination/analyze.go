package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/elimination/config"
	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/logging"
	"github.com/katalvlaran/elimination/report"
	"github.com/katalvlaran/elimination/standings"
)

// streamStats counts what happened while processing one input stream.
type streamStats struct {
	divisions int
	failed    int
}

// analyzeStream analyzes every division in r and renders each result to out.
// A malformed or rejected division is logged and counted; processing then
// moves on to the next division.
func analyzeStream(
	ctx context.Context,
	cfg config.Config,
	source string,
	r io.Reader,
	out io.Writer,
) (streamStats, error) {
	log := logging.New("cli").With("source", source)
	format, _ := report.ParseFormat(cfg.Output.Format)
	analyzer := elimination.New(cfg.AnalyzerOptions()...)
	rd := standings.NewReader(r)

	var st streamStats
	for {
		div, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		st.divisions++

		var pe *standings.ParseError
		if errors.As(err, &pe) {
			st.failed++
			log.Error("skipping malformed division", "division", pe.Division, "line", pe.Line, "err", pe.Err)
			fmt.Fprintf(out, "%v\n\n", err)
			continue
		}
		if err != nil {
			return st, err
		}

		res, err := analyzer.Analyze(ctx, div)
		if err != nil {
			if ctx.Err() != nil {
				return st, err
			}
			st.failed++
			log.Error("division rejected", "division", st.divisions, "err", err)
			fmt.Fprintf(out, "Division %d: %v\n\n", st.divisions, err)
			continue
		}
		if err := report.Render(out, div, res, format); err != nil {
			return st, err
		}
		fmt.Fprintln(out)
	}
}
