package view

import (
	"testing"

	"holdem-console/internal/api"
)

func TestBuildPotIncludesRoundBets(t *testing.T) {
	state := api.GameState{
		Pot: 100,
		Players: []api.PlayerState{
			{Name: "Dana", Bet: 20},
			{Name: "CPU 1", Bet: 30, IsCPU: true},
		},
		GameInProgress: true,
	}
	tv := Build(state)
	if tv.PotLabel != "Pot: 150" {
		t.Fatalf("PotLabel = %q, want %q", tv.PotLabel, "Pot: 150")
	}
}

func TestBuildPotZeroPlayers(t *testing.T) {
	tv := Build(api.GameState{Pot: 60})
	if tv.PotLabel != "Pot: 60" {
		t.Fatalf("PotLabel = %q, want %q", tv.PotLabel, "Pot: 60")
	}
	if tv.ShowNextRound {
		t.Fatal("ShowNextRound = true with no players")
	}
}

func TestBuildStatusFoldBeatsAllIn(t *testing.T) {
	state := api.GameState{Players: []api.PlayerState{
		{Name: "a", IsFolded: true, IsAllIn: true},
		{Name: "b", IsAllIn: true},
		{Name: "c"},
	}}
	tv := Build(state)
	if tv.Seats[0].Status != "Fold" {
		t.Fatalf("seat 0 status = %q, want Fold", tv.Seats[0].Status)
	}
	if tv.Seats[1].Status != "All-in" {
		t.Fatalf("seat 1 status = %q, want All-in", tv.Seats[1].Status)
	}
	if tv.Seats[2].Status != "" {
		t.Fatalf("seat 2 status = %q, want empty", tv.Seats[2].Status)
	}
}

func TestBuildHiddenHandRendersTwoPlaceholders(t *testing.T) {
	state := api.GameState{Players: []api.PlayerState{
		{Name: "cpu", IsCPU: true, ShowHand: false, Hand: nil},
		{Name: "me", ShowHand: true, Hand: []api.Card{{Suit: "♠", Rank: "A"}, {Suit: "♥", Rank: "10"}}},
	}}
	tv := Build(state)
	if len(tv.Seats[0].Cards) != 2 || !tv.Seats[0].Cards[0].FaceDown || !tv.Seats[0].Cards[1].FaceDown {
		t.Fatalf("hidden hand = %+v, want two face-down cards", tv.Seats[0].Cards)
	}
	if len(tv.Seats[1].Cards) != 2 || tv.Seats[1].Cards[0].Label != "♠A" || tv.Seats[1].Cards[1].Label != "♥10" {
		t.Fatalf("shown hand = %+v", tv.Seats[1].Cards)
	}
}

func TestBuildActiveSeatOnlyWhileInProgress(t *testing.T) {
	state := api.GameState{
		Players:            []api.PlayerState{{Name: "a"}, {Name: "b"}},
		CurrentPlayerIndex: 1,
		GameInProgress:     true,
	}
	tv := Build(state)
	if tv.Seats[0].Active || !tv.Seats[1].Active {
		t.Fatalf("active flags = %v/%v, want false/true", tv.Seats[0].Active, tv.Seats[1].Active)
	}

	state.GameInProgress = false
	tv = Build(state)
	if tv.Seats[1].Active {
		t.Fatal("seat marked active while no hand is in progress")
	}
	if !tv.ShowNextRound {
		t.Fatal("ShowNextRound = false after hand finished with players seated")
	}
}

func TestBuildLogJoinedWithLineBreaks(t *testing.T) {
	tv := Build(api.GameState{Log: []string{"one", "two", "three"}})
	if tv.LogText != "one\ntwo\nthree" {
		t.Fatalf("LogText = %q", tv.LogText)
	}
}

func TestBuildCommunityCardsOrdered(t *testing.T) {
	tv := Build(api.GameState{CommunityCards: []api.Card{
		{Suit: "♦", Rank: "K"}, {Suit: "♣", Rank: "7"}, {Suit: "♠", Rank: "2"},
	}})
	want := []string{"♦K", "♣7", "♠2"}
	if len(tv.Community) != 3 {
		t.Fatalf("community = %d cards, want 3", len(tv.Community))
	}
	for i, c := range tv.Community {
		if c.Label != want[i] {
			t.Fatalf("community[%d] = %q, want %q", i, c.Label, want[i])
		}
	}
}
