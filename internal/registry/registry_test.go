package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
)

type stubGame struct {
	id   string
	seed int64
}

func (g *stubGame) ID() string                    { return g.id }
func (g *stubGame) Title() string                 { return "Stub " + g.id }
func (g *stubGame) Instruction() string           { return "WAIT!" }
func (g *stubGame) WinOnTimeout() bool            { return true }
func (g *stubGame) Init(float64, core.Difficulty) {}
func (g *stubGame) Update(float64) core.Outcome   { return core.OutcomeContinue }
func (g *stubGame) Render(core.Painter)           {}
func (g *stubGame) Duration() time.Duration       { return time.Second }
func (g *stubGame) Attach(*input.Hub)             {}
func (g *stubGame) Detach()                       {}

func stubFactory(id string) Factory {
	return func(_ core.Surface, seed int64) Microgame {
		return &stubGame{id: id, seed: seed}
	}
}

func init() {
	Register("stub-b", stubFactory("stub-b"))
	Register("stub-a", stubFactory("stub-a"))
}

func TestListSortedWithMetadata(t *testing.T) {
	list := List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(list))
	}
	if list[0].ID != "stub-a" || list[1].ID != "stub-b" {
		t.Errorf("List() = %v, expected sorted by ID", list)
	}
	if list[0].Title != "Stub stub-a" || list[0].Instruction != "WAIT!" {
		t.Errorf("List()[0] = %+v, expected metadata from the game", list[0])
	}

	ids := IDs()
	if len(ids) != 2 || ids[0] != "stub-a" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestCreate(t *testing.T) {
	g, err := Create("stub-a", core.NewCanvas(800, 600), 42)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" || g.(*stubGame).seed != 42 {
		t.Errorf("Create() = %+v, expected stub-a with seed 42", g)
	}

	if _, err := Create("missing", core.NewCanvas(800, 600), 0); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
}

func TestExists(t *testing.T) {
	if !Exists("stub-b") {
		t.Error("Exists(stub-b) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()
	Register("stub-a", stubFactory("stub-a"))
}
