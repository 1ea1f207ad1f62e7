package hilo

import "math/rand"

const DefaultStartingMoney = 1000

// GameState is the per-player game entity. One round at a time mutates it;
// serializing access per player is the caller's job.
type GameState struct {
	PlayerName   string `json:"player_name"`
	Deck         Deck   `json:"deck"`
	BaseCard     *Card  `json:"base_card"`
	NextCard     *Card  `json:"next_card"`
	Money        int    `json:"money"`
	Round        int    `json:"round"`
	Win          *bool  `json:"win"`
	RoundStarted bool   `json:"is_round_started"`
	RoundEnded   bool   `json:"is_round_ended"`
}

func NewGameState(playerName string, shuffleDeck bool, rng *rand.Rand) *GameState {
	gs := &GameState{
		PlayerName: playerName,
		Money:      DefaultStartingMoney,
		Round:      1,
	}
	gs.InitDeck(shuffleDeck, rng)
	return gs
}

// InitDeck replaces the deck with a fresh catalog deck, shuffled if requested.
func (gs *GameState) InitDeck(shuffle bool, rng *rand.Rand) {
	gs.Deck = NewDeck()
	if shuffle {
		gs.Deck.Shuffle(rng)
	}
}

func (gs *GameState) DrawBaseCard() error {
	card, err := gs.Deck.Draw()
	if err != nil {
		return err
	}
	gs.BaseCard = &card
	return nil
}

func (gs *GameState) DrawNextCard() error {
	card, err := gs.Deck.Draw()
	if err != nil {
		return err
	}
	gs.NextCard = &card
	return nil
}

func (gs *GameState) IsBankrupt() bool {
	return gs.Money == 0
}

func (gs *GameState) IncrementRound() {
	gs.Round++
}
