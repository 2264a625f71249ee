package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tower-climber/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.MultiInputFrame, float64) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	for _, id := range []string{"stub_b", "stub_a"} {
		if !Exists(id) {
			Register(id, func() Game { return stubGame{id: id} })
		}
	}

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false, expected true")
	}
	if Exists("stub_missing") {
		t.Error("Exists(stub_missing) = true, expected false")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.Title != "Stub "+info.ID {
			t.Errorf("Title of %s = %q, expected %q", info.ID, info.Title, "Stub "+info.ID)
		}
	}
	if !slices.IsSorted(ids) {
		t.Errorf("List() ids = %v, expected sorted", ids)
	}
	if !slices.Contains(ids, "stub_a") || !slices.Contains(ids, "stub_b") {
		t.Errorf("List() ids = %v, expected stub_a and stub_b", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	if !Exists("stub_dup") {
		Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	}

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate id should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
