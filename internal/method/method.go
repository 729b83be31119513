// Package method names ringing methods by stage.
package method

import (
	"errors"
	"fmt"
)

// ErrUnknownStage is returned when a stage has no conventional name.
var ErrUnknownStage = errors.New("no name for stage")

// Stage bounds accepted by the stage stepper.
const (
	MinStage = 2
	MaxStage = 24
)

// stageNames is indexed by number of bells. 0, 1 and 2 have no name.
var stageNames = [...]string{
	"", "", "",
	"Singles",
	"Minimus",
	"Doubles",
	"Minor",
	"Triples",
	"Major",
	"Caters",
	"Royal",
	"Cinques",
	"Maximus",
}

// Stage pairs a bell count with its name.
type Stage struct {
	Bells int
	Name  string
}

// StageName returns the conventional name for a stage.
// Stages without a name return "" and an error wrapping ErrUnknownStage.
func StageName(stage int) (string, error) {
	if stage < 0 || stage >= len(stageNames) || stageNames[stage] == "" {
		return "", fmt.Errorf("%w: %d", ErrUnknownStage, stage)
	}
	return stageNames[stage], nil
}

// Stages returns every named stage in ascending order.
func Stages() []Stage {
	var stages []Stage
	for bells, name := range stageNames {
		if name == "" {
			continue
		}
		stages = append(stages, Stage{Bells: bells, Name: name})
	}
	return stages
}

// FullName joins a method and its stage name, e.g. "Plain Bob Minor".
// For an unknown stage the joined string still carries the separating
// space ("Plain Bob ") and the lookup error is returned alongside it.
func FullName(method string, stage int) (string, error) {
	name, err := StageName(stage)
	return method + " " + name, err
}
