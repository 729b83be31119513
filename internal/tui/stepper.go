package tui

import (
	"fmt"
	"strconv"

	"github.com/tessro/ringer/internal/method"
)

// Stepper is a bounded integer field for the stage.
type Stepper struct {
	value   int
	min     int
	max     int
	focused bool
}

// NewStepper creates a stepper clamped to [lo, hi].
func NewStepper(value, lo, hi int) Stepper {
	s := Stepper{min: lo, max: hi}
	s.SetValue(value)
	return s
}

// Value returns the current value.
func (s Stepper) Value() int {
	return s.value
}

// SetValue sets the value, clamping it to the range.
func (s *Stepper) SetValue(v int) {
	s.value = max(s.min, min(s.max, v))
}

// Increment raises the value by one. Returns false at the upper bound.
func (s *Stepper) Increment() bool {
	if s.value >= s.max {
		return false
	}
	s.value++
	return true
}

// Decrement lowers the value by one. Returns false at the lower bound.
func (s *Stepper) Decrement() bool {
	if s.value <= s.min {
		return false
	}
	s.value--
	return true
}

// SetFocused sets the focus state.
func (s *Stepper) SetFocused(focused bool) {
	s.focused = focused
}

// View renders "‹ 6 ›  Minor".
func (s Stepper) View() string {
	arrow := stageArrowStyle
	if s.focused {
		arrow = stageArrowFocusedStyle
	}
	left, right := "‹", "›"
	if s.value <= s.min {
		left = " "
	}
	if s.value >= s.max {
		right = " "
	}

	name, err := method.StageName(s.value)
	var label string
	if err != nil {
		label = stageUnknownStyle.Render("no name")
	} else {
		label = stageNameStyle.Render(name)
	}

	return fmt.Sprintf("%s %s %s  %s",
		arrow.Render(left),
		stageValueStyle.Render(strconv.Itoa(s.value)),
		arrow.Render(right),
		label,
	)
}
