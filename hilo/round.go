package hilo

import "math/rand"

// MinCardsRequired is the number of cards a deck must still hold for a new
// round; below it the deck is replenished and reshuffled.
const MinCardsRequired = 2

// InitGameState creates the state for a brand-new game: fresh shuffled deck,
// base card for the first round already drawn, round open.
func InitGameState(playerName string, rng *rand.Rand) (*GameState, error) {
	gs := NewGameState(playerName, true, rng)
	if err := gs.DrawBaseCard(); err != nil {
		return nil, err
	}
	gs.RoundStarted = true
	return gs, nil
}

func prepareDeck(gs *GameState, rng *rand.Rand) {
	if gs.Deck.Size() < MinCardsRequired {
		gs.InitDeck(true, rng)
	}
}

// InitRound opens the next round on an existing game. The caller must have
// verified that the previous round ended.
func InitRound(gs *GameState, rng *rand.Rand) (*GameState, error) {
	prepareDeck(gs, rng)
	if err := gs.DrawBaseCard(); err != nil {
		return nil, err
	}
	gs.IncrementRound()
	gs.RoundStarted = true
	gs.RoundEnded = false
	return gs, nil
}

func computePredictionResult(nextCard *Card, baseCard *Card, prediction Prediction) (bool, error) {
	if nextCard == nil || baseCard == nil {
		return false, CardComparisonError{Msg: "Cannot compare cards: base or next card is missing"}
	}
	if prediction == PredictionHigher {
		return nextCard.HigherThan(*baseCard), nil
	}
	return nextCard.LowerThan(*baseCard), nil
}

func computeRoundResult(gs *GameState, prediction Prediction) error {
	if err := gs.DrawNextCard(); err != nil {
		return err
	}
	win, err := computePredictionResult(gs.NextCard, gs.BaseCard, prediction)
	if err != nil {
		return err
	}
	gs.Win = &win
	return nil
}

func validateBet(bet int, money int) error {
	if bet < 1 || bet > money {
		return InvalidBetError{Bet: bet, Money: money}
	}
	return nil
}

func updateMoney(gs *GameState, bet int) error {
	if err := validateBet(bet, gs.Money); err != nil {
		return err
	}
	if *gs.Win {
		gs.Money += bet
	} else {
		gs.Money -= bet
	}
	return nil
}

// GetRoundResult resolves the open round: draws the next card, evaluates
// the prediction (a tie is a loss either way), settles the wager and closes
// the round.
func GetRoundResult(gs *GameState, prediction Prediction, bet int) (*GameState, error) {
	if err := computeRoundResult(gs, prediction); err != nil {
		return nil, err
	}
	if err := updateMoney(gs, bet); err != nil {
		return nil, err
	}
	gs.RoundEnded = true
	gs.RoundStarted = false
	return gs, nil
}
