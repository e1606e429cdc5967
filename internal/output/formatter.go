package output

import (
	"sort"

	"github.com/rgehrsitz/bdtax/internal/domain"
)

// Report is everything a formatter needs to render one calculation
type Report struct {
	Config   domain.TaxConfig            `json:"config"`
	Result   domain.TaxCalculationResult `json:"result"`
	Language domain.Language             `json:"language"`
}

// Formatter renders a Report in one output format
type Formatter interface {
	Name() string
	Format(report Report) ([]byte, error)
}

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
	register(YAMLFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatterNames lists the registered formatter names in sorted order
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
