package method

import (
	"errors"
	"testing"
)

func TestStageName(t *testing.T) {
	tests := []struct {
		stage int
		want  string
	}{
		{3, "Singles"},
		{4, "Minimus"},
		{5, "Doubles"},
		{6, "Minor"},
		{7, "Triples"},
		{8, "Major"},
		{9, "Caters"},
		{10, "Royal"},
		{11, "Cinques"},
		{12, "Maximus"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := StageName(tt.stage)
			if err != nil {
				t.Fatalf("StageName(%d) error = %v", tt.stage, err)
			}
			if got != tt.want {
				t.Errorf("StageName(%d) = %q, want %q", tt.stage, got, tt.want)
			}
		})
	}
}

func TestStageName_Unknown(t *testing.T) {
	for _, stage := range []int{-1, 0, 1, 2, 13, 16, 24, 100} {
		got, err := StageName(stage)
		if got != "" {
			t.Errorf("StageName(%d) = %q, want empty", stage, got)
		}
		if !errors.Is(err, ErrUnknownStage) {
			t.Errorf("StageName(%d) error = %v, want ErrUnknownStage", stage, err)
		}
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		method string
		stage  int
		want   string
	}{
		{"Plain Bob", 6, "Plain Bob Minor"},
		{"Grandsire", 3, "Grandsire Singles"},
		{"Stedman", 11, "Stedman Cinques"},
		{"", 8, " Major"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := FullName(tt.method, tt.stage)
			if err != nil {
				t.Fatalf("FullName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FullName(%q, %d) = %q, want %q", tt.method, tt.stage, got, tt.want)
			}
		})
	}
}

func TestFullName_UnknownStageKeepsSeparator(t *testing.T) {
	got, err := FullName("Plain Bob", 14)
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("error = %v, want ErrUnknownStage", err)
	}
	if got != "Plain Bob " {
		t.Errorf("FullName() = %q, want %q", got, "Plain Bob ")
	}
}

func TestStages(t *testing.T) {
	stages := Stages()
	if len(stages) != 10 {
		t.Fatalf("len(Stages()) = %d, want 10", len(stages))
	}
	if stages[0] != (Stage{Bells: 3, Name: "Singles"}) {
		t.Errorf("first stage = %+v", stages[0])
	}
	if stages[len(stages)-1] != (Stage{Bells: 12, Name: "Maximus"}) {
		t.Errorf("last stage = %+v", stages[len(stages)-1])
	}
	for i := 1; i < len(stages); i++ {
		if stages[i].Bells <= stages[i-1].Bells {
			t.Errorf("stages not ascending at %d: %+v", i, stages)
		}
	}
}
