package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TableReloadedMsg:
		if msg.Config != nil {
			m.calc.Config = *msg.Config
			m.builtin = false
			m.notice = fmt.Sprintf("Reloaded tax table FY %s", msg.Config.FiscalYear)
			m.recompute()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Increase):
		m.stepAmount(1)
		return m, nil

	case key.Matches(msg, keys.Decrease):
		m.stepAmount(-1)
		return m, nil

	case key.Matches(msg, keys.ToggleMode):
		amount, err := domain.ParseAmount(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		next := domain.AnnualFromMonthly(amount)
		if !m.monthly {
			next = amount.Div(decimal.NewFromInt(12)).Round(2)
		}
		// toggling straight back restores the exact amount
		if m.carrying && m.input.Value() == m.carryInput {
			next = m.carry
		}
		m.carry = amount
		m.monthly = !m.monthly
		m.resetSlider()
		m.setAmount(next)
		m.carrying = true
		m.carryInput = m.input.Value()
		m.recompute()
		return m, nil

	case key.Matches(msg, keys.ToggleLang):
		if m.lang == domain.LanguageBangla {
			m.lang = domain.LanguageEnglish
		} else {
			m.lang = domain.LanguageBangla
		}
		if m.builtin {
			m.calc.Config = calculation.LocalizedTaxConfig(m.lang)
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, keys.Clear):
		m.setAmount(decimal.Zero)
		m.notice = ""
		m.recompute()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !allowedRunes(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}
