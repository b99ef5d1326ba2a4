package registry

import (
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{"test_b"} })
	Register("test_a", func() Game { return stubGame{"test_a"} })

	if !Exists("test_a") {
		t.Error("Exists(test_a) = false, expected true")
	}
	if Exists("test_missing") {
		t.Error("Exists(test_missing) = true, expected false")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create(test_b) error = %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("Create(test_b).ID() = %q, expected test_b", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create(test_missing) returned no error")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "test_a":
			ia = i
			if list[i].Title != "Stub test_a" {
				t.Errorf("title = %q, expected Stub test_a", list[i].Title)
			}
		case "test_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected test_a before test_b", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{"test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{"test_dup"} })
}
