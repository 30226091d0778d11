// Package narrator turns notable game events into one line of flavour text
// using Gemini. It is optional; the game runs without it.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/narrate_event.txt
var narrateEventPrompt string

var narrateTmpl = template.Must(template.New("narrate_event").Parse(narrateEventPrompt))

// Scene is the game state the narrator describes an event in.
type Scene struct {
	Type     engine.EventType
	Message  string
	Location string
	BaseTier string
	models.Wallet
}

// SceneOf captures the current state of eng around ev.
func SceneOf(eng *engine.Engine, ev engine.Event) Scene {
	b := eng.Base()
	return Scene{
		Type:     ev.Type,
		Message:  ev.Message,
		Location: eng.Location().String(),
		BaseTier: b.Tier(),
		Wallet:   eng.Wallet(),
	}
}

// Worth reports whether an event is interesting enough to narrate.
func Worth(t engine.EventType) bool {
	switch t {
	case engine.EventKill, engine.EventEnterCave, engine.EventBaseUpgraded, engine.EventBuilt:
		return true
	}
	return false
}

// Narrator wraps a Gemini model.
type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New connects to Gemini with the given API key and model name.
func New(ctx context.Context, apiKey, model string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	m := client.GenerativeModel(model)
	m.SetTemperature(0.9)
	m.SetMaxOutputTokens(64)
	return &Narrator{client: client, model: m}, nil
}

// Close releases the client.
func (n *Narrator) Close() {
	n.client.Close()
}

// Narrate returns a single sentence describing the scene.
func (n *Narrator) Narrate(ctx context.Context, s Scene) (string, error) {
	prompt, err := Prompt(s)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return clean(string(text)), nil
}

// Prompt renders the narration prompt for s.
func Prompt(s Scene) (string, error) {
	var buf bytes.Buffer
	if err := narrateTmpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`\"")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
