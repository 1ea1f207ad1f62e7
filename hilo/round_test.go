package hilo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCard(t *testing.T, rank string, suit string) Card {
	t.Helper()
	card, err := NewCard(rank, suit)
	require.NoError(t, err)
	return card
}

// stateMidRound builds a game state with a known base card and a known
// remaining deck, as if a round is open and waiting for the wager.
func stateMidRound(t *testing.T, base Card, deckCards ...Card) *GameState {
	t.Helper()
	gs := NewGameState("foo", false, nil)
	gs.BaseCard = &base
	gs.Deck = Deck{Cards: deckCards}
	gs.RoundStarted = true
	return gs
}

func TestInitGameState(t *testing.T) {
	expected := NewDeck()
	expected.Shuffle(rand.New(rand.NewSource(1337)))

	gs, err := InitGameState("alpha", rand.New(rand.NewSource(1337)))
	require.NoError(t, err)

	assert.Equal(t, "alpha", gs.PlayerName)
	assert.Equal(t, 1000, gs.Money)
	assert.Equal(t, 1, gs.Round)
	assert.True(t, gs.RoundStarted)
	assert.False(t, gs.RoundEnded)
	require.NotNil(t, gs.BaseCard)
	assert.True(t, gs.BaseCard.Equals(expected.Cards[0]))
	assert.Equal(t, 51, gs.Deck.Size())
}

func TestFirstBaseCardFromUnshuffledDeck(t *testing.T) {
	gs := NewGameState("alpha", false, nil)
	require.NoError(t, gs.DrawBaseCard())

	assert.Equal(t, "2", gs.BaseCard.Rank)
	assert.Equal(t, "D", gs.BaseCard.Suit)
	assert.Equal(t, "Two of Diamonds", gs.BaseCard.Name)
}

func TestInitRound(t *testing.T) {
	gs := NewGameState("foo", false, nil)
	gs.RoundEnded = true

	updated, err := InitRound(gs, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Round)
	assert.True(t, updated.RoundStarted)
	assert.False(t, updated.RoundEnded)
	require.NotNil(t, updated.BaseCard)
	assert.Equal(t, 51, updated.Deck.Size())
}

func TestInitRoundReplenishesExhaustedDeck(t *testing.T) {
	gs := NewGameState("foo", false, nil)
	gs.Deck = Deck{Cards: []Card{mustCard(t, "A", "S")}}
	gs.RoundEnded = true

	updated, err := InitRound(gs, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// One card was below the minimum, so the deck was rebuilt to 52 and
	// shuffled before the new base card was drawn.
	assert.Equal(t, 51, updated.Deck.Size())
	require.NotNil(t, updated.BaseCard)
}

func TestInitRoundKeepsDeckWithEnoughCards(t *testing.T) {
	gs := NewGameState("foo", false, nil)
	gs.Deck = Deck{Cards: []Card{mustCard(t, "A", "S"), mustCard(t, "K", "H")}}
	gs.RoundEnded = true

	updated, err := InitRound(gs, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Deck.Size())
	assert.Equal(t, "AS", updated.BaseCard.String())
}

func TestGetRoundResultWinHigher(t *testing.T) {
	gs := stateMidRound(t, mustCard(t, "7", "D"), mustCard(t, "A", "H"))

	updated, err := GetRoundResult(gs, PredictionHigher, 1)
	require.NoError(t, err)

	require.NotNil(t, updated.Win)
	assert.True(t, *updated.Win)
	assert.Equal(t, 1001, updated.Money)
	assert.Equal(t, "AH", updated.NextCard.String())
	assert.False(t, updated.RoundStarted)
	assert.True(t, updated.RoundEnded)
}

func TestGetRoundResultWinLower(t *testing.T) {
	gs := stateMidRound(t, mustCard(t, "7", "D"), mustCard(t, "2", "H"))

	updated, err := GetRoundResult(gs, PredictionLower, 1)
	require.NoError(t, err)

	require.NotNil(t, updated.Win)
	assert.True(t, *updated.Win)
	assert.Equal(t, 1001, updated.Money)
}

func TestGetRoundResultLoss(t *testing.T) {
	gs := stateMidRound(t, mustCard(t, "7", "D"), mustCard(t, "2", "H"))

	updated, err := GetRoundResult(gs, PredictionHigher, 1)
	require.NoError(t, err)

	require.NotNil(t, updated.Win)
	assert.False(t, *updated.Win)
	assert.Equal(t, 999, updated.Money)
}

func TestGetRoundResultTieIsALoss(t *testing.T) {
	// A reshuffled deck can repeat the base card; equal values lose for
	// both predictions.
	for _, prediction := range []Prediction{PredictionHigher, PredictionLower} {
		gs := stateMidRound(t, mustCard(t, "7", "D"), mustCard(t, "7", "D"))

		updated, err := GetRoundResult(gs, prediction, 10)
		require.NoError(t, err)
		require.NotNil(t, updated.Win)
		assert.False(t, *updated.Win, "prediction %s", prediction)
		assert.Equal(t, 990, updated.Money)
	}
}

func TestGetRoundResultInvalidBet(t *testing.T) {
	for _, bet := range []int{0, -1, 1001} {
		gs := stateMidRound(t, mustCard(t, "7", "D"), mustCard(t, "A", "H"))

		_, err := GetRoundResult(gs, PredictionHigher, bet)
		require.Error(t, err, "bet %d", bet)
		assert.IsType(t, InvalidBetError{}, err)
	}
}

func TestGetRoundResultBetOfEntireBalance(t *testing.T) {
	gs := stateMidRound(t, mustCard(t, "A", "S"), mustCard(t, "2", "H"))

	updated, err := GetRoundResult(gs, PredictionHigher, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Money)
	assert.True(t, updated.IsBankrupt())
}

func TestGetRoundResultMissingBaseCard(t *testing.T) {
	gs := NewGameState("foo", false, nil)

	_, err := GetRoundResult(gs, PredictionHigher, 1)
	require.Error(t, err)
	assert.IsType(t, CardComparisonError{}, err)
}

func TestGetRoundResultExhaustedDeck(t *testing.T) {
	gs := stateMidRound(t, mustCard(t, "7", "D"))

	_, err := GetRoundResult(gs, PredictionHigher, 1)
	require.Error(t, err)
	assert.IsType(t, EmptyDeckError{}, err)
}

func TestParsePrediction(t *testing.T) {
	p, err := ParsePrediction("Higher")
	require.NoError(t, err)
	assert.Equal(t, PredictionHigher, p)

	p, err = ParsePrediction("Lower")
	require.NoError(t, err)
	assert.Equal(t, PredictionLower, p)

	_, err = ParsePrediction("Sideways")
	assert.IsType(t, InvalidPredictionError{}, err)
}
