// Package launch owns the launch form and the single bot process started
// from it.
package launch

import (
	"sync"

	"github.com/tessro/ringer/internal/method"
)

// Form holds the user-editable launch parameters.
// It is comparable; two forms are equal when everything the user can see
// is equal.
type Form struct {
	// Identifier is the tower ID, passed through to the bot unchanged.
	Identifier string
	// Stage is the number of bells, kept within [method.MinStage, method.MaxStage].
	Stage int
	// Method is the method name without its stage, e.g. "Plain Bob".
	Method string
}

// ClampStage limits stage to the range the stepper allows.
func ClampStage(stage int) int {
	if stage < method.MinStage {
		return method.MinStage
	}
	if stage > method.MaxStage {
		return method.MaxStage
	}
	return stage
}

// FullMethodName returns the method joined with its stage name.
func (f Form) FullMethodName() (string, error) {
	return method.FullName(f.Method, f.Stage)
}

// BuildArgs returns the bot's argument list:
//
//	<identifier> --method <full method name>
//
// The list is always returned. For a stage with no name the method
// argument is "<method> " and err wraps method.ErrUnknownStage.
func BuildArgs(f Form) ([]string, error) {
	full, err := f.FullMethodName()
	return []string{f.Identifier, "--method", full}, err
}

// State is the application's form plus the process launched from it.
// The process handle is not part of the visible state: compare Visible()
// results to decide whether anything the user sees has changed.
type State struct {
	Form

	mu sync.Mutex
	// +checklocks:mu
	active Process
	// +checklocks:mu
	launched *Form
}

// NewState creates a state with no running process.
func NewState(form Form) *State {
	form.Stage = ClampStage(form.Stage)
	return &State{Form: form}
}

// Visible returns the user-visible part of the state.
func (s *State) Visible() Form {
	return s.Form
}

// Active returns the tracked process, or nil.
func (s *State) Active() Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Launched returns the form the tracked process was started with.
// ok is false when no process is tracked.
func (s *State) Launched() (form Form, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.launched == nil {
		return Form{}, false
	}
	return *s.launched, true
}

// Modified reports whether the visible form differs from the one the
// tracked process was started with.
func (s *State) Modified() bool {
	launched, ok := s.Launched()
	return ok && launched != s.Visible()
}
