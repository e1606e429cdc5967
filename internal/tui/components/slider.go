package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider is a horizontal bar showing a value within a range. Step is the
// increment the owner applies per key press.
type Slider struct {
	Value      float64
	Min        float64
	Max        float64
	Step       float64
	Width      int
	TrackStyle lipgloss.Style
	ThumbStyle lipgloss.Style
}

// NewSlider creates a slider with a 30 cell bar
func NewSlider(value, min, max, step float64) *Slider {
	s := &Slider{Min: min, Max: max, Step: step, Width: 30}
	s.SetValue(value)
	return s
}

// SetValue sets the value directly, clamping to min/max
func (s *Slider) SetValue(value float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, value))
}

// Percentage returns the value as a fraction of the range
func (s *Slider) Percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render draws the bar, e.g. [━━━━●────]
func (s *Slider) Render() string {
	filled := int(math.Round(float64(s.Width) * s.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == filled || (filled == s.Width && i == s.Width-1):
			bar.WriteString(s.ThumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(s.ThumbStyle.Render("━"))
		default:
			bar.WriteString(s.TrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
