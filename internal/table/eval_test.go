package table

import "testing"

func TestEvaluate7FlushBeatsStraight(t *testing.T) {
	flush := Evaluate7([]Card{
		{Rank: Two, Suit: Hearts}, {Rank: Five, Suit: Hearts}, {Rank: Nine, Suit: Hearts},
		{Rank: Jack, Suit: Hearts}, {Rank: King, Suit: Hearts}, {Rank: Three, Suit: Clubs},
		{Rank: Four, Suit: Spades},
	})
	straight := Evaluate7([]Card{
		{Rank: Five, Suit: Hearts}, {Rank: Six, Suit: Clubs}, {Rank: Seven, Suit: Spades},
		{Rank: Eight, Suit: Diamonds}, {Rank: Nine, Suit: Hearts}, {Rank: Two, Suit: Clubs},
		{Rank: Two, Suit: Spades},
	})
	if flush.Category != 5 {
		t.Fatalf("flush category = %d, want 5", flush.Category)
	}
	if straight.Category != 4 {
		t.Fatalf("straight category = %d, want 4", straight.Category)
	}
	if !flush.BetterThan(straight) {
		t.Fatal("flush did not beat straight")
	}
}

func TestEvaluate7WheelStraight(t *testing.T) {
	wheel := Evaluate7([]Card{
		{Rank: Ace, Suit: Hearts}, {Rank: Two, Suit: Clubs}, {Rank: Three, Suit: Spades},
		{Rank: Four, Suit: Diamonds}, {Rank: Five, Suit: Hearts}, {Rank: Nine, Suit: Clubs},
		{Rank: Jack, Suit: Spades},
	})
	if wheel.Category != 4 {
		t.Fatalf("wheel category = %d, want straight", wheel.Category)
	}
	if len(wheel.Ranks) == 0 || wheel.Ranks[0] != 5 {
		t.Fatalf("wheel high = %v, want 5", wheel.Ranks)
	}
}

func TestEvaluate7FullHouseName(t *testing.T) {
	h := Evaluate7([]Card{
		{Rank: King, Suit: Hearts}, {Rank: King, Suit: Clubs}, {Rank: King, Suit: Spades},
		{Rank: Two, Suit: Diamonds}, {Rank: Two, Suit: Hearts}, {Rank: Nine, Suit: Clubs},
		{Rank: Jack, Suit: Spades},
	})
	if h.Category != 6 {
		t.Fatalf("category = %d, want 6", h.Category)
	}
	if h.Name() != "Full House" {
		t.Fatalf("Name() = %q, want Full House", h.Name())
	}
}

func TestHandRankEqualForSplitPots(t *testing.T) {
	board := []Card{
		{Rank: Ace, Suit: Hearts}, {Rank: King, Suit: Hearts}, {Rank: Queen, Suit: Clubs},
		{Rank: Jack, Suit: Spades}, {Rank: Ten, Suit: Diamonds},
	}
	a := Evaluate7(append([]Card{{Rank: Two, Suit: Clubs}, {Rank: Three, Suit: Clubs}}, board...))
	b := Evaluate7(append([]Card{{Rank: Four, Suit: Spades}, {Rank: Five, Suit: Spades}}, board...))
	if !a.Equal(b) {
		t.Fatalf("board-played hands not equal: %+v vs %+v", a, b)
	}
}
