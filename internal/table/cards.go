package table

import "math/rand"

type Suit int

type Rank int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type Card struct {
	Rank Rank
	Suit Suit
}

// SuitToken and RankToken are the display tokens the wire carries; clients
// treat them as opaque.
func (c Card) SuitToken() string {
	return map[Suit]string{Spades: "♠", Hearts: "♥", Diamonds: "♦", Clubs: "♣"}[c.Suit]
}

func (c Card) RankToken() string {
	return map[Rank]string{
		Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
		Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
	}[c.Rank]
}

func (c Card) String() string {
	return c.SuitToken() + c.RankToken()
}

type Deck struct {
	cards []Card
}

func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

func (d *Deck) Deal() Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}
