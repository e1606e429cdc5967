package tui

import (
	"github.com/rgehrsitz/bdtax/internal/domain"
)

// TableReloadedMsg carries a bracket table reloaded from disk
type TableReloadedMsg struct {
	Config *domain.TaxConfig
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
