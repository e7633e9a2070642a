package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridcraft/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func registerStub(id string) {
	Register(id, func() Game { return &stubGame{id: id} })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub("test_b")
	registerStub("test_a")

	if !Exists("test_a") {
		t.Fatal("Exists(test_a) = false, expected true")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create().ID() = %q, expected test_a", g.ID())
	}

	var got []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			got = append(got, info.ID+":"+info.Title)
		}
	}
	want := []string{"test_a:Stub test_a", "test_b:Stub test_b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, expected %v", got, want)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if err == nil {
		t.Fatal("Create(no_such_game) returned nil error")
	}
	if !strings.Contains(err.Error(), "no_such_game") {
		t.Errorf("error %q does not name the game", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub("test_dup")

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID did not panic")
		}
	}()
	registerStub("test_dup")
}
