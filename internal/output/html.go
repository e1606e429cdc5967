package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter produces a printable tax receipt
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/receipt.html.tmpl
var receiptTemplateSource string

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	// replaced per render with language-aware versions
	"curr": func(any) string { return "" },
	"rate": func(any) string { return "" },
	"pct":  func(any) string { return "" },
}).Parse(receiptTemplateSource))

func (HTMLFormatter) Format(report Report) ([]byte, error) {
	nf := NewNumberFormatter(report.Language, report.Config.Currency)
	tmpl, err := receiptTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"curr": nf.Currency,
		"rate": nf.Rate,
		"pct":  nf.Percentage,
	})

	data := struct {
		Report
		Labels Labels
	}{report, LabelsFor(report.Language)}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
