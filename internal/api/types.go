package api

type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
)

// Card is an opaque display token pair; the client never interprets values.
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type PlayerState struct {
	Name     string `json:"name"`
	Hand     []Card `json:"hand"`
	Chips    int64  `json:"chips"`
	Bet      int64  `json:"bet"`
	HasActed bool   `json:"has_acted"`
	IsFolded bool   `json:"is_folded"`
	IsAllIn  bool   `json:"is_all_in"`
	IsCPU    bool   `json:"is_cpu"`
	IsGemini bool   `json:"is_gemini"`
	ShowHand bool   `json:"show_hand"`
}

// IsHuman reports whether this seat is the local player. The wire carries no
// explicit "this is you" marker, so the human is whoever is neither CPU nor
// Gemini controlled; the authority guarantees at most one such seat.
func (p PlayerState) IsHuman() bool {
	return !p.IsCPU && !p.IsGemini
}

// GameState is one authoritative snapshot of the table. Snapshots fully
// replace each other; nothing in here is ever mutated in place.
type GameState struct {
	Players            []PlayerState `json:"players"`
	CommunityCards     []Card        `json:"community_cards"`
	Pot                int64         `json:"pot"`
	CurrentBet         int64         `json:"current_bet"`
	CurrentPlayerIndex int           `json:"current_player_index"`
	GameStage          string        `json:"game_stage"`
	GameInProgress     bool          `json:"game_in_progress"`
	Log                []string      `json:"log"`
	HumanActionNeeded  bool          `json:"human_action_needed"`
}

// Human returns the local player's seat index.
func (g GameState) Human() (int, bool) {
	for i, p := range g.Players {
		if p.IsHuman() {
			return i, true
		}
	}
	return 0, false
}

// TotalPot is the pot from completed streets plus every chip committed in
// the current betting round.
func (g GameState) TotalPot() int64 {
	total := g.Pot
	for _, p := range g.Players {
		total += p.Bet
	}
	return total
}
