// Package report renders elimination results for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/standings"
)

// Format controls the output layout.
type Format string

const (
	ASCII    Format = "ascii"    // fixed-width terminal table
	Markdown Format = "markdown" // GitHub-flavoured Markdown table
	Plain    Format = "plain"    // summary line only
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a name to a Format. The empty string selects ASCII.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", ASCII:
		return ASCII, nil
	case Markdown, Plain:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Summary is the one-line outcome for a division.
func Summary(res *elimination.Result) string {
	if len(res.Eliminated) == 0 {
		return "No teams have been eliminated."
	}
	return "Teams eliminated: [" + strings.Join(res.Eliminated, ", ") + "]"
}

// Render writes the table (unless f is Plain), the summary line and any
// certificates for one division.
func Render(w io.Writer, div *standings.Division, res *elimination.Result, f Format) error {
	var b strings.Builder
	if f != Plain {
		b.WriteString(Table(div, res, f))
		b.WriteByte('\n')
	}
	b.WriteString(Summary(res))
	b.WriteByte('\n')
	for _, v := range res.Verdicts {
		if v.Certificate != nil {
			b.WriteString("  ")
			b.WriteString(v.Certificate.String())
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Table renders one row per team.
func Table(div *standings.Division, res *elimination.Result, f Format) string {
	tw := table.NewWriter()
	style := table.StyleDefault
	if f == ASCII {
		style = table.StyleLight
	}
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"Team", "Wins", "Remaining", "Max Wins", "Status", "Flow"})
	for _, v := range res.Verdicts {
		t := div.Team(v.Index)
		flowCol := "-"
		if v.State == elimination.Eliminated || v.State == elimination.NotEliminated {
			flowCol = fmt.Sprintf("%d/%d", v.MaxFlow, v.TotalCapacity)
		}
		tw.AppendRow(table.Row{t.Name, t.Wins, t.Remaining, v.MaxWins, v.State.String(), flowCol})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "eliminated", len(res.Eliminated)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	if f == Markdown {
		return tw.RenderMarkdown()
	}
	return tw.Render()
}
