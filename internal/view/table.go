package view

import (
	"fmt"
	"strings"

	"holdem-console/internal/api"
)

type CardView struct {
	Label    string
	FaceDown bool
}

type SeatView struct {
	Name   string
	Chips  int64
	Bet    int64
	Status string // "Fold" beats "All-in" when both flags are set
	Active bool
	Cards  []CardView
	Pos    Point
}

// TableView is the full declarative description of one rendered frame.
// Build is a pure projection; the presenter owns no game state and each
// snapshot produces a complete replacement frame.
type TableView struct {
	PotLabel      string
	Stage         string
	Community     []CardView
	Seats         []SeatView
	LogText       string
	ShowNextRound bool
}

func Build(state api.GameState) TableView {
	pts := SeatPositions(len(state.Players))
	seats := make([]SeatView, len(state.Players))
	for i, p := range state.Players {
		seats[i] = SeatView{
			Name:   p.Name,
			Chips:  p.Chips,
			Bet:    p.Bet,
			Status: statusTag(p),
			Active: state.GameInProgress && i == state.CurrentPlayerIndex,
			Cards:  handCards(p),
			Pos:    pts[i],
		}
	}

	community := make([]CardView, 0, len(state.CommunityCards))
	for _, c := range state.CommunityCards {
		community = append(community, CardView{Label: c.Suit + c.Rank})
	}

	return TableView{
		PotLabel:      fmt.Sprintf("Pot: %d", state.TotalPot()),
		Stage:         state.GameStage,
		Community:     community,
		Seats:         seats,
		LogText:       strings.Join(state.Log, "\n"),
		ShowNextRound: !state.GameInProgress && len(state.Players) > 0,
	}
}

func statusTag(p api.PlayerState) string {
	switch {
	case p.IsFolded:
		return "Fold"
	case p.IsAllIn:
		return "All-in"
	default:
		return ""
	}
}

// handCards renders the face-up hand when the snapshot allows it, otherwise
// exactly two hidden placeholders regardless of actual hand size.
func handCards(p api.PlayerState) []CardView {
	if !p.ShowHand {
		return []CardView{{FaceDown: true}, {FaceDown: true}}
	}
	cards := make([]CardView, 0, len(p.Hand))
	for _, c := range p.Hand {
		cards = append(cards, CardView{Label: c.Suit + c.Rank})
	}
	return cards
}
