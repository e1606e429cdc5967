package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/bdtax/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	l := output.LabelsFor(m.lang)
	nf := output.NewNumberFormatter(m.lang, m.calc.Config.Currency)

	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Income Tax Calculator · FY %s", m.calc.Config.FiscalYear)))
	b.WriteString("\n\n")

	inputLabel := l.YearlyIncome
	if m.monthly {
		inputLabel = l.MonthlySalary
	}
	b.WriteString(LabelStyle.Render(inputLabel))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.slider.Render())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(BorderStyle.Render(m.renderSummary(l, nf)))
	b.WriteString("\n")

	if len(m.result.Breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderBreakdown(l, nf))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return AppStyle.Render(b.String())
}

func (m Model) renderSummary(l output.Labels, nf *output.NumberFormatter) string {
	row := func(label, value string, style lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Width(22).Render(label),
			style.Render(value))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		row(l.TotalYearlyTax, nf.Currency(m.result.TotalTax), TotalStyle),
		row(l.MonthlyTax, nf.Currency(m.result.MonthlyTax()), ValueStyle),
		row(l.EffectiveRate, nf.Percentage(m.result.EffectiveRate), ValueStyle),
	)
}

func (m Model) renderBreakdown(l output.Labels, nf *output.NumberFormatter) string {
	var b strings.Builder

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s %s", l.AnnualIncome, nf.Currency(m.result.AnnualIncome))))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-30s %16s %6s %14s", l.IncomeSlab, l.Amount, l.Rate, l.Tax)))
	b.WriteString("\n")
	for _, item := range m.result.Breakdown {
		b.WriteString(fmt.Sprintf("%-30s %16s %6s %14s\n",
			item.Bracket,
			nf.Currency(item.TaxableAmount),
			nf.Rate(item.Rate),
			nf.Currency(item.Tax)))
	}
	return b.String()
}
