package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per breakdown item followed by a total row
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Bracket", "TaxableAmount", "Rate", "Tax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	result := report.Result
	for _, item := range result.Breakdown {
		row := []string{
			item.Bracket,
			item.TaxableAmount.StringFixed(2),
			item.Rate.String(),
			item.Tax.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	total := []string{"Total", result.AnnualIncome.StringFixed(2), result.EffectiveRate.StringFixed(2), result.TotalTax.StringFixed(2)}
	if err := w.Write(total); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
