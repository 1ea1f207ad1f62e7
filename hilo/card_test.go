package hilo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValueBijection(t *testing.T) {
	seen := make(map[int]string)
	for ri, rank := range strRanks {
		for si, suit := range strSuits {
			card, err := NewCard(rank, suit)
			require.NoError(t, err)
			assert.Equal(t, 4*ri+si+1, card.Value, "card %s", card)
			prev, dup := seen[card.Value]
			assert.False(t, dup, "value %d assigned to both %s and %s", card.Value, prev, card)
			seen[card.Value] = card.String()
		}
	}
	assert.Len(t, seen, 52)
	for v := 1; v <= 52; v++ {
		assert.Contains(t, seen, v)
	}
}

func TestCardName(t *testing.T) {
	testCases := []struct {
		rank     string
		suit     string
		expected string
	}{
		{"2", "D", "Two of Diamonds"},
		{"10", "C", "Ten of Clubs"},
		{"J", "H", "Jack of Hearts"},
		{"A", "S", "Ace of Spades"},
	}

	for _, tc := range testCases {
		card, err := NewCard(tc.rank, tc.suit)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, card.Name)
	}
}

func TestNewCardInvalidRank(t *testing.T) {
	_, err := NewCard("1", "D")
	require.Error(t, err)
	assert.IsType(t, InvalidRankError{}, err)

	_, err = NewCard("T", "D")
	assert.IsType(t, InvalidRankError{}, err)
}

func TestNewCardInvalidSuit(t *testing.T) {
	_, err := NewCard("2", "X")
	require.Error(t, err)
	assert.IsType(t, InvalidSuitError{}, err)
}

func TestCardOrdering(t *testing.T) {
	twoD, _ := NewCard("2", "D")
	twoS, _ := NewCard("2", "S")
	aceH, _ := NewCard("A", "H")

	assert.True(t, twoS.HigherThan(twoD))
	assert.True(t, twoD.LowerThan(twoS))
	assert.True(t, aceH.HigherThan(twoS))
	assert.False(t, twoD.HigherThan(twoD))
	assert.False(t, twoD.LowerThan(twoD))
}

func TestCardEquality(t *testing.T) {
	a, _ := NewCard("Q", "H")
	b, _ := NewCard("Q", "H")
	c, _ := NewCard("Q", "S")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestRankAndSuitIndex(t *testing.T) {
	i, err := RankIndex("A")
	require.NoError(t, err)
	assert.Equal(t, 12, i)

	i, err = SuitIndex("S")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = RankIndex("Z")
	assert.IsType(t, InvalidRankError{}, err)
	_, err = SuitIndex("Z")
	assert.IsType(t, InvalidSuitError{}, err)
}
