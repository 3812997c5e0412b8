package tui

import (
	"strings"
	"testing"

	"holdem-console/internal/api"
	"holdem-console/internal/view"
)

func frameFor(t *testing.T, state api.GameState) string {
	t.Helper()
	return Frame(view.Build(state))
}

func TestFrameShowsPotAndCommunity(t *testing.T) {
	frame := frameFor(t, api.GameState{
		Pot: 100,
		Players: []api.PlayerState{
			{Name: "Dana", Bet: 20, ShowHand: true},
			{Name: "CPU 1", Bet: 30, IsCPU: true},
		},
		CommunityCards: []api.Card{{Suit: "♦", Rank: "K"}, {Suit: "♣", Rank: "7"}},
		GameStage:      "flop",
		GameInProgress: true,
	})
	if !strings.Contains(frame, "Pot: 150") {
		t.Fatalf("frame missing pot label:\n%s", frame)
	}
	if !strings.Contains(frame, "♦K ♣7") {
		t.Fatalf("frame missing community cards:\n%s", frame)
	}
	if !strings.Contains(frame, "flop") {
		t.Fatalf("frame missing stage:\n%s", frame)
	}
}

func TestFrameSeatZeroInTopHalf(t *testing.T) {
	frame := frameFor(t, api.GameState{
		Players: []api.PlayerState{
			{Name: "TopSeat"},
			{Name: "Bottom1"},
			{Name: "Bottom2"},
		},
	})
	lines := strings.Split(frame, "\n")
	seatRow := -1
	for i, line := range lines {
		if strings.Contains(line, "TopSeat") {
			seatRow = i
			break
		}
	}
	if seatRow < 0 {
		t.Fatalf("seat 0 not drawn:\n%s", frame)
	}
	if seatRow >= canvasHeight/2 {
		t.Fatalf("seat 0 drawn at row %d, want top half (< %d)", seatRow, canvasHeight/2)
	}
}

func TestFrameHiddenHandAndStatusTags(t *testing.T) {
	frame := frameFor(t, api.GameState{
		Players: []api.PlayerState{
			{Name: "Dana", ShowHand: true, Hand: []api.Card{{Suit: "♠", Rank: "A"}, {Suit: "♥", Rank: "10"}}},
			{Name: "CPU 1", IsCPU: true, IsFolded: true},
		},
		GameInProgress:     true,
		CurrentPlayerIndex: 0,
	})
	if !strings.Contains(frame, "♠A ♥10") {
		t.Fatalf("face-up hand missing:\n%s", frame)
	}
	if !strings.Contains(frame, "[?] [?]") {
		t.Fatalf("face-down placeholders missing:\n%s", frame)
	}
	if !strings.Contains(frame, "CPU 1 [Fold]") {
		t.Fatalf("fold tag missing:\n%s", frame)
	}
	if !strings.Contains(frame, "▶ Dana") {
		t.Fatalf("active marker missing:\n%s", frame)
	}
}

func TestFrameAppendsLogTail(t *testing.T) {
	frame := frameFor(t, api.GameState{
		Players: []api.PlayerState{{Name: "Dana"}},
		Log:     []string{"Dana posts the small blind (10).", "Your turn."},
	})
	if !strings.Contains(frame, "Dana posts the small blind (10).\nYour turn.") {
		t.Fatalf("log tail missing:\n%s", frame)
	}
}
