package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"holdem-console/internal/action"
	"holdem-console/internal/api"
)

// Prompt implements the interactive parts of the client on pterm. Each
// prompt blocks the loop until the operator answers; acceptable for a
// single-user client.
type Prompt struct{}

// RaiseAmount asks for the intended total bet. Anything absent, not a
// number, or not positive cancels the raise.
func (Prompt) RaiseAmount(context.Context) (int64, bool) {
	raw, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Raise to (total bet for this round)").Show()
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// SelectAction presents the enabled controls and returns the chosen action.
// ok=false when nothing is enabled or the selection fails.
func (Prompt) SelectAction(controls action.Controls) (api.ActionType, bool) {
	options := make([]string, 0, 4)
	byLabel := map[string]api.ActionType{}
	for _, entry := range []struct {
		control action.Control
		kind    api.ActionType
	}{
		{controls.Fold, api.ActionFold},
		{controls.Check, api.ActionCheck},
		{controls.Call, api.ActionCall},
		{controls.Raise, api.ActionRaise},
	} {
		if entry.control.Enabled {
			options = append(options, entry.control.Label)
			byLabel[entry.control.Label] = entry.kind
		}
	}
	if len(options) == 0 {
		return "", false
	}
	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your turn").WithOptions(options).Show()
	if err != nil {
		return "", false
	}
	kind, ok := byLabel[choice]
	return kind, ok
}

// NextRoundConfirm asks whether to begin the next hand.
func (Prompt) NextRoundConfirm() bool {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Hand finished. Start the next round?").
		WithDefaultValue(true).Show()
	return err == nil && ok
}

// SetupForm collects the table settings and enforces the opponent-count
// precondition before anything is sent.
func (Prompt) SetupForm(defaultName string) api.StartGameRequest {
	if defaultName == "" {
		defaultName = "You"
	}
	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your name").WithDefaultValue(defaultName).Show()
	if strings.TrimSpace(name) == "" {
		name = defaultName
	}

	for {
		cpu := askCount("Number of CPU opponents")
		gemini := askCount("Number of Gemini opponents")
		req := api.StartGameRequest{Name: name, CPUPlayers: cpu, GeminiPlayers: gemini}
		if err := req.Validate(); err != nil {
			pterm.Error.Println("Pick between 1 and 7 opponents in total.")
			continue
		}
		return req
	}
}

func askCount(label string) int {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(label).WithDefaultValue("0").Show()
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			pterm.Error.Println("Enter a non-negative number.")
			continue
		}
		return n
	}
}
