package domain

import (
	"fmt"
	"strings"
)

// Language selects the display language for bracket descriptions and numbers
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

// ParseLanguage accepts "en" or "bn" (case-insensitive); empty means English
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return LanguageEnglish, nil
	case "bn", "bangla", "bengali":
		return LanguageBangla, nil
	default:
		return "", fmt.Errorf("unsupported language: %s", s)
	}
}
