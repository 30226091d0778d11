package narrator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/models"
)

func TestPromptIncludesScene(t *testing.T) {
	s := Scene{
		Type:     engine.EventKill,
		Message:  "monster 3 slain, found a blueprint",
		Location: "Cave",
		BaseTier: "Outpost",
		Wallet:   models.Wallet{Wood: 12, Stone: 4, Gold: 1, Blueprints: 2},
	}

	prompt, err := Prompt(s)
	if err != nil {
		t.Fatalf("Failed to render prompt: %v", err)
	}
	for _, want := range []string{"Outpost", "in the Cave", "12 wood", "2 ancient blueprints", "monster 3 slain", "KILL"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
}

func TestSceneOf(t *testing.T) {
	eng := engine.New(engine.Options{Width: 800, Height: 600}, rand.New(rand.NewSource(1)), nil)
	s := SceneOf(eng, engine.Event{Type: engine.EventBuilt, Message: "built a Sawmill"})

	if s.Location != "Surface" || s.BaseTier != "Camp" {
		t.Errorf("Expected Surface/Camp, got %s/%s", s.Location, s.BaseTier)
	}
	if s.Message != "built a Sawmill" {
		t.Errorf("Expected message carried over, got %q", s.Message)
	}
}

func TestWorth(t *testing.T) {
	if !Worth(engine.EventKill) {
		t.Errorf("Expected kills to be narrated")
	}
	if Worth(engine.EventAttack) {
		t.Errorf("Expected plain swings to be skipped")
	}
}

func TestClean(t *testing.T) {
	got := clean("  \"The beast falls.\"\nextra line")
	if got != "The beast falls." {
		t.Errorf("Expected cleaned sentence, got %q", got)
	}
}
