package hilo

import "math/rand"

// Deck is an ordered, mutable sequence of cards. A fresh deck holds the
// 52 catalog combinations in rank-major, suit-minor order.
type Deck struct {
	Cards []Card `json:"cards"`
}

func NewDeck() Deck {
	cards := make([]Card, 0, len(strRanks)*len(strSuits))
	for _, rank := range strRanks {
		for _, suit := range strSuits {
			card, _ := NewCard(rank, suit)
			cards = append(cards, card)
		}
	}
	return Deck{Cards: cards}
}

// Shuffle permutes the deck in place using the supplied random source.
// The source is injected so callers can seed it for reproducible orders.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the card at the front of the deck.
func (d *Deck) Draw() (Card, error) {
	return d.DrawAt(0)
}

func (d *Deck) DrawAt(index int) (Card, error) {
	if index < 0 || index >= len(d.Cards) {
		return Card{}, EmptyDeckError{Index: index}
	}
	card := d.Cards[index]
	d.Cards = append(d.Cards[:index], d.Cards[index+1:]...)
	return card, nil
}

func (d Deck) Size() int {
	return len(d.Cards)
}

func (d Deck) Equals(other Deck) bool {
	if len(d.Cards) != len(other.Cards) {
		return false
	}
	for i, card := range d.Cards {
		if !card.Equals(other.Cards[i]) {
			return false
		}
	}
	return true
}
