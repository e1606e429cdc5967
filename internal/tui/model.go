package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/tui/components"
	"github.com/shopspring/decimal"
)

// slider ranges per input mode
const (
	monthlyMax  = 500000
	monthlyStep = 5000
	yearlyMax   = 6000000
	yearlyStep  = 60000
)

// Model is the interactive calculator state
type Model struct {
	input  textinput.Model
	slider components.Slider
	help   help.Model

	calc    *calculation.BracketTaxCalculator
	builtin bool // table is the built-in one and follows the language toggle
	lang    domain.Language
	monthly bool

	// amount in the other mode before the last toggle, valid while the
	// input still reads carryInput
	carry      decimal.Decimal
	carryInput string
	carrying   bool

	result domain.TaxCalculationResult
	err    error
	notice string
	width  int
}

// NewModel creates a calculator over cfg. builtin marks cfg as the built-in
// table so that switching language swaps its descriptions.
func NewModel(cfg domain.TaxConfig, lang domain.Language, builtin bool) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 50,000"
	ti.CharLimit = 15
	ti.Width = 20
	ti.Focus()

	m := Model{
		input:   ti,
		help:    help.New(),
		calc:    calculation.NewBracketTaxCalculator(cfg),
		builtin: builtin,
		lang:    lang,
		monthly: true,
		width:   80,
	}
	m.resetSlider()
	m.recompute()
	return m
}

// WithLogger routes calculator debug output to l
func (m Model) WithLogger(l calculation.Logger) Model {
	m.calc.SetLogger(l)
	return m
}

// Result returns the latest calculation
func (m Model) Result() domain.TaxCalculationResult { return m.result }

// Monthly reports whether the input is a monthly salary
func (m Model) Monthly() bool { return m.monthly }

// Input returns the raw input text
func (m Model) Input() string { return m.input.Value() }

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) resetSlider() {
	if m.monthly {
		m.slider = *components.NewSlider(0, 0, monthlyMax, monthlyStep)
	} else {
		m.slider = *components.NewSlider(0, 0, yearlyMax, yearlyStep)
	}
	m.slider.TrackStyle = SliderTrackStyle
	m.slider.ThumbStyle = SliderThumbStyle
}

func allowedRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != ',' && r != '.' {
			return false
		}
	}
	return true
}

// recompute parses the input and refreshes the result
func (m *Model) recompute() {
	amount, err := domain.ParseAmount(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	f, _ := amount.Float64()
	m.slider.SetValue(f)

	if m.monthly {
		m.result = m.calc.CalculateMonthly(amount)
	} else {
		m.result = m.calc.Calculate(amount)
	}
}

func (m *Model) setAmount(d decimal.Decimal) {
	if d.IsZero() {
		m.input.SetValue("")
	} else {
		m.input.SetValue(d.String())
	}
	m.input.CursorEnd()
}

// stepAmount moves the typed amount by one slider step in direction dir.
// The slider only displays the amount, so values above its range still step
// from what was typed.
func (m *Model) stepAmount(dir int64) {
	amount, err := domain.ParseAmount(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	amount = amount.Add(decimal.NewFromFloat(m.slider.Step).Mul(decimal.NewFromInt(dir)))
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	m.setAmount(amount)
	m.recompute()
}
