package term

import (
	"math"
	"strconv"
	"strings"
)

const barWidth = 40

// BarChart renders values as horizontal bars, one row per value.
// Bars are scaled so the largest magnitude fills the full width.
// Labels may be nil; rows beyond len(labels) get an index label.
func (w *Writer) BarChart(title string, labels []string, values []float64) {
	if title != "" {
		w.Headerf("%s", title)
	}
	if len(values) == 0 {
		w.Dimf("(no data)")
		return
	}

	var max float64
	for _, v := range values {
		if m := math.Abs(v); m > max {
			max = m
		}
	}

	labelWidth := 0
	rowLabel := func(i int) string {
		if i < len(labels) {
			return labels[i]
		}
		return strconv.Itoa(i + 1)
	}
	for i := range values {
		if n := len(rowLabel(i)); n > labelWidth {
			labelWidth = n
		}
	}

	for i, v := range values {
		n := 0
		if max > 0 {
			n = int(math.Round(math.Abs(v) / max * barWidth))
		}
		bar := strings.Repeat("#", n)
		w.Printf("%-*s | %s %g\n", labelWidth, rowLabel(i), w.accent(bar), v)
	}
}
