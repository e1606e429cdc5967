package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
)

// FormatSweep renders sweep points as a console table, csv or json
func FormatSweep(points []calculation.SweepPoint, format string, lang domain.Language, currency string) ([]byte, error) {
	switch format {
	case "", "console", "table":
		return sweepTable(points, lang, currency), nil
	case "csv":
		return sweepCSV(points)
	case "json":
		return json.MarshalIndent(points, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported sweep format: %s", format)
	}
}

func sweepTable(points []calculation.SweepPoint, lang domain.Language, currency string) []byte {
	var buf bytes.Buffer
	l := LabelsFor(lang)
	nf := NewNumberFormatter(lang, currency)

	fmt.Fprintf(&buf, "%20s %20s %14s %10s\n", l.YearlyIncome, l.TotalYearlyTax, l.EffectiveRate, l.Rate)
	buf.WriteString(strings.Repeat("-", 67) + "\n")
	for _, p := range points {
		fmt.Fprintf(&buf, "%20s %20s %14s %10s\n",
			nf.Amount(p.Income),
			nf.Amount(p.TotalTax),
			nf.Percentage(p.EffectiveRate),
			nf.Rate(p.MarginalRate))
	}
	return buf.Bytes()
}

func sweepCSV(points []calculation.SweepPoint) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Income", "TotalTax", "EffectiveRate", "MarginalRate"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		row := []string{
			p.Income.StringFixed(2),
			p.TotalTax.StringFixed(0),
			p.EffectiveRate.StringFixed(2),
			p.MarginalRate.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
