package table

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Stage string

const (
	StagePreFlop  Stage = "pre-flop"
	StageFlop     Stage = "flop"
	StageTurn     Stage = "turn"
	StageRiver    Stage = "river"
	StageShowdown Stage = "showdown"
)

type Player struct {
	Name     string
	Hand     []Card
	Chips    int64
	Bet      int64
	HasActed bool
	Folded   bool
	AllIn    bool
	IsCPU    bool
	IsGemini bool
	ShowHand bool
}

func (p *Player) human() bool {
	return !p.IsCPU && !p.IsGemini
}

type Rules struct {
	StartingChips int64
	SmallBlind    int64
	BigBlind      int64
	// ThinkDelay paces scripted opponents; zero resolves their turns
	// immediately (tests).
	ThinkDelay time.Duration
}

var (
	ErrNotYourTurn   = errors.New("not_your_turn")
	ErrHandRunning   = errors.New("hand_in_progress")
	ErrTooFewPlayers = errors.New("not_enough_players")
)

// Table is one game of hold'em against scripted opponents. One mutex guards
// everything; opponent turns run on a background goroutine that takes the
// lock per step so state reads stay consistent between polls.
type Table struct {
	mu    sync.Mutex
	rules Rules
	rng   *rand.Rand

	players    []*Player
	deck       *Deck
	community  []Card
	pot        int64
	currentBet int64
	current    int
	stage      Stage
	inProgress bool
	smallBlind int
	logLines   []string
	humanTurn  bool
}

func New(rules Rules, humanName string, cpuPlayers, geminiPlayers int, seed int64) *Table {
	if rules.StartingChips <= 0 {
		rules.StartingChips = 1000
	}
	if rules.SmallBlind <= 0 {
		rules.SmallBlind = 10
	}
	if rules.BigBlind <= 0 {
		rules.BigBlind = 2 * rules.SmallBlind
	}
	t := &Table{
		rules:      rules,
		rng:        rand.New(rand.NewSource(seed)),
		smallBlind: -1,
	}
	t.players = append(t.players, &Player{Name: humanName, Chips: rules.StartingChips, ShowHand: true})
	for i := 0; i < cpuPlayers; i++ {
		t.players = append(t.players, &Player{Name: fmt.Sprintf("CPU %d", i+1), Chips: rules.StartingChips, IsCPU: true})
	}
	for i := 0; i < geminiPlayers; i++ {
		t.players = append(t.players, &Player{Name: fmt.Sprintf("Gemini %d", i+1), Chips: rules.StartingChips, IsGemini: true})
	}
	return t
}

// Start deals the first hand and kicks off the opponent loop.
func (t *Table) Start() error {
	t.mu.Lock()
	if len(t.players) < 2 {
		t.mu.Unlock()
		return ErrTooFewPlayers
	}
	t.startHandLocked()
	running := t.inProgress
	t.mu.Unlock()
	if running {
		go t.run()
	}
	return nil
}

// NextRound begins the next hand; rejected while one is still running.
func (t *Table) NextRound() error {
	t.mu.Lock()
	if t.inProgress {
		t.mu.Unlock()
		return ErrHandRunning
	}
	t.startHandLocked()
	running := t.inProgress
	t.mu.Unlock()
	if running {
		go t.run()
	}
	return nil
}

func (t *Table) startHandLocked() {
	t.inProgress = true
	t.deck = NewDeck(t.rng)
	t.community = nil
	t.pot = 0
	t.currentBet = 0
	t.stage = StagePreFlop
	t.logLines = nil
	t.humanTurn = false

	kept := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.Chips > 0 {
			kept = append(kept, p)
		}
	}
	t.players = kept
	if len(t.players) < 2 {
		t.logLocked("Fewer than two players can still play. Game over.")
		t.inProgress = false
		return
	}

	for _, p := range t.players {
		p.Hand = []Card{t.deck.Deal(), t.deck.Deal()}
		p.Bet = 0
		p.HasActed = false
		p.Folded = false
		p.AllIn = false
		p.ShowHand = p.human()
	}

	t.smallBlind = (t.smallBlind + 1) % len(t.players)
	bbIdx := (t.smallBlind + 1) % len(t.players)

	t.postBlindLocked(t.players[t.smallBlind], t.rules.SmallBlind, "small blind")
	t.postBlindLocked(t.players[bbIdx], t.rules.BigBlind, "big blind")
	t.currentBet = t.rules.BigBlind
	t.current = (bbIdx + 1) % len(t.players)
}

func (t *Table) postBlindLocked(p *Player, amount int64, name string) {
	posted := amount
	if posted > p.Chips {
		posted = p.Chips
	}
	t.logLocked("%s posts the %s (%d).", p.Name, name, posted)
	p.Bet = posted
	p.Chips -= posted
	if p.Chips == 0 {
		p.AllIn = true
	}
}

// run plays scripted opponents forward until the hand needs the human, the
// betting settles, or the hand ends.
func (t *Table) run() {
	for {
		t.mu.Lock()
		if !t.inProgress {
			t.mu.Unlock()
			return
		}

		if t.activeCountLocked() <= 1 {
			t.endRoundLocked()
			t.mu.Unlock()
			return
		}

		if t.bettingRoundDoneLocked() {
			t.advanceStageLocked()
			running := t.inProgress
			t.mu.Unlock()
			if !running {
				return
			}
			continue
		}

		cur := t.players[t.current]
		if cur.Folded || cur.AllIn {
			t.current = (t.current + 1) % len(t.players)
			t.mu.Unlock()
			continue
		}

		if cur.human() {
			t.logLocked("Your turn.")
			t.humanTurn = true
			t.mu.Unlock()
			return
		}

		kind, amount := t.decideLocked(cur)
		delay := t.rules.ThinkDelay
		t.mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}
		t.mu.Lock()
		t.applyLocked(kind, amount)
		t.mu.Unlock()
	}
}

func (t *Table) activeCountLocked() int {
	n := 0
	for _, p := range t.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// bettingRoundDoneLocked: everyone still able to bet has acted and all their
// bets match.
func (t *Table) bettingRoundDoneLocked() bool {
	acted := 0
	able := 0
	bets := map[int64]bool{}
	for _, p := range t.players {
		if p.Folded || p.AllIn {
			continue
		}
		able++
		if p.HasActed {
			acted++
		}
		bets[p.Bet] = true
	}
	return acted == able && len(bets) <= 1
}

func (t *Table) advanceStageLocked() {
	t.collectBetsLocked()

	switch t.stage {
	case StagePreFlop:
		t.stage = StageFlop
		t.community = append(t.community, t.deck.Deal(), t.deck.Deal(), t.deck.Deal())
		t.logLocked("--- Flop ---")
	case StageFlop:
		t.stage = StageTurn
		t.community = append(t.community, t.deck.Deal())
		t.logLocked("--- Turn ---")
	case StageTurn:
		t.stage = StageRiver
		t.community = append(t.community, t.deck.Deal())
		t.logLocked("--- River ---")
	case StageRiver:
		t.stage = StageShowdown
		t.endRoundLocked()
		return
	}

	community := ""
	for i, c := range t.community {
		if i > 0 {
			community += " "
		}
		community += c.String()
	}
	t.logLocked("Community Cards: %s", community)

	t.currentBet = 0
	able := 0
	for _, p := range t.players {
		if !p.Folded && !p.AllIn {
			p.HasActed = false
			able++
		}
	}
	if able == 0 {
		// Everyone left is all-in; no seat can act, so the next pass
		// deals the remaining streets straight through to showdown.
		return
	}
	t.current = t.smallBlind
	for t.players[t.current].Folded || t.players[t.current].AllIn {
		t.current = (t.current + 1) % len(t.players)
	}
}

func (t *Table) collectBetsLocked() {
	for _, p := range t.players {
		t.pot += p.Bet
		p.Bet = 0
	}
}

func (t *Table) endRoundLocked() {
	t.collectBetsLocked()

	for _, p := range t.players {
		p.ShowHand = true
	}

	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if !p.Folded {
			active = append(active, p)
		}
	}

	t.logLocked("--- Round End ---")
	switch {
	case len(active) == 1:
		active[0].Chips += t.pot
		t.logLocked("%s wins the pot (%d)!", active[0].Name, t.pot)
	case len(active) > 1:
		best := HandRank{Category: -1}
		ranks := make([]HandRank, len(active))
		for i, p := range active {
			ranks[i] = Evaluate7(append(append([]Card{}, p.Hand...), t.community...))
			if ranks[i].BetterThan(best) {
				best = ranks[i]
			}
		}
		winners := make([]*Player, 0, len(active))
		for i, p := range active {
			if ranks[i].Equal(best) {
				winners = append(winners, p)
			}
		}
		winnings := t.pot / int64(len(winners))
		names := ""
		for i, w := range winners {
			w.Chips += winnings
			if i > 0 {
				names += ", "
			}
			names += w.Name
		}
		// An odd chip goes to the first winner rather than off the table.
		winners[0].Chips += t.pot % int64(len(winners))
		t.logLocked("%s win(s) the pot (%d) with %s!", names, t.pot, best.Name())
	}

	t.inProgress = false
	t.humanTurn = false
	t.logLocked("Round over. Start the next round when ready.")
}

func (t *Table) logLocked(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	t.logLines = append(t.logLines, line)
	log.Debug().Str("table_log", line).Msg("table event")
}
