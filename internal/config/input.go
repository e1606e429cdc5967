package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of bracket table files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a bracket table from a YAML (or JSON) file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes and validates a bracket table document
func (ip *InputParser) Parse(data []byte) (*domain.TaxConfig, error) {
	var cfg domain.TaxConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates a loaded bracket table
func (ip *InputParser) ValidateConfiguration(cfg *domain.TaxConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is empty", calculation.ErrInvalidBrackets)
	}
	return calculation.ValidateTaxConfig(*cfg)
}

// LoadOrDefault loads filename, or returns the built-in table for lang when filename is empty
func (ip *InputParser) LoadOrDefault(filename string, lang domain.Language) (*domain.TaxConfig, error) {
	if filename == "" {
		cfg := calculation.LocalizedTaxConfig(lang)
		return &cfg, nil
	}
	return ip.LoadFromFile(filename)
}

// Marshal renders a bracket table in the file format LoadFromFile reads
func Marshal(cfg domain.TaxConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bracket table: %w", err)
	}
	return data, nil
}
