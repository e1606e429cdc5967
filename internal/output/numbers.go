package output

import (
	"strings"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var banglaDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// NumberFormatter renders amounts and rates for display.
// English output uses western thousands grouping; Bangla output uses
// lakh grouping with Bengali digits.
type NumberFormatter struct {
	lang     domain.Language
	currency string
	printer  *message.Printer
}

// NewNumberFormatter creates a formatter for lang; currency is the ISO code shown in English output
func NewNumberFormatter(lang domain.Language, currency string) *NumberFormatter {
	tag := language.English
	if lang == domain.LanguageBangla {
		tag = language.MustParse("en-IN")
	}
	if currency == "" {
		currency = "BDT"
	}
	return &NumberFormatter{lang: lang, currency: currency, printer: message.NewPrinter(tag)}
}

func (nf *NumberFormatter) digits(s string) string {
	if nf.lang == domain.LanguageBangla {
		return banglaDigits.Replace(s)
	}
	return s
}

// Amount rounds to whole units and groups thousands, e.g. 1,065,000
func (nf *NumberFormatter) Amount(d decimal.Decimal) string {
	whole := d.Round(0)
	if whole.BigInt().IsInt64() {
		return nf.digits(nf.printer.Sprintf("%d", whole.IntPart()))
	}
	return nf.digits(nf.group(whole.StringFixed(0)))
}

// group inserts separators into a plain integer string for values the
// printer cannot take as int64.
func (nf *NumberFormatter) group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	size := 3
	if nf.lang == domain.LanguageBangla {
		size = 2 // lakh grouping after the first three digits
	}
	if len(s) <= 3 {
		return sign + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > size {
		parts = append([]string{head[len(head)-size:]}, parts...)
		head = head[:len(head)-size]
	}
	parts = append([]string{head}, parts...)
	return sign + strings.Join(append(parts, tail), ",")
}

// Currency is Amount with the currency marker, e.g. "BDT 1,065,000" or "৳১০,৬৫,০০০"
func (nf *NumberFormatter) Currency(d decimal.Decimal) string {
	if nf.lang == domain.LanguageBangla {
		return "৳" + nf.Amount(d)
	}
	return nf.currency + " " + nf.Amount(d)
}

// Rate renders a bracket rate as given, e.g. 12.5%
func (nf *NumberFormatter) Rate(d decimal.Decimal) string {
	return nf.digits(d.String()) + "%"
}

// Percentage renders a rate with two decimals, e.g. 5.83%
func (nf *NumberFormatter) Percentage(d decimal.Decimal) string {
	return nf.digits(d.StringFixed(2)) + "%"
}
