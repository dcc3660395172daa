// Package report renders a human-readable run summary for the
// diagnostic stream. The contractual result line on standard output is
// produced elsewhere; everything here is optional decoration.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Summary holds the run statistics shown by the --summary flag.
type Summary struct {
	Mode      string
	Records   int64
	Malformed int64
	Groups    int
	Result    string // formatted result line (claim_id,status_code,length)
	Duration  time.Duration
}

func (s Summary) rows() [][2]string {
	return [][2]string{
		{"Mode", s.Mode},
		{"Records", strconv.FormatInt(s.Records, 10)},
		{"Malformed lines", strconv.FormatInt(s.Malformed, 10)},
		{"Groups", strconv.Itoa(s.Groups)},
		{"Longest cycle", s.Result},
		{"Duration", s.Duration.Round(time.Millisecond).String()},
	}
}

// Render returns the summary as an aligned two-column ASCII table.
// Widths are computed with runewidth so wide characters in key values
// keep the columns aligned.
func (s Summary) Render() string {
	rows := s.rows()

	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
		if w := runewidth.StringWidth(row[1]); w > valueWidth {
			valueWidth = w
		}
	}

	border := "+" + strings.Repeat("-", labelWidth+2) + "+" +
		strings.Repeat("-", valueWidth+2) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	for _, row := range rows {
		b.WriteString("| ")
		b.WriteString(runewidth.FillRight(row[0], labelWidth))
		b.WriteString(" | ")
		b.WriteString(runewidth.FillRight(row[1], valueWidth))
		b.WriteString(" |\n")
	}
	b.WriteString(border)
	return b.String()
}

// Print writes a titled summary to w (normally stderr).
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, color.Bold.Sprint("Scan summary"))
	fmt.Fprint(w, s.Render())
}
