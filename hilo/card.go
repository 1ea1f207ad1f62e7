package hilo

// Rank and suit catalogs. Order matters: it defines card identity and the
// total ordering of the 52-card deck (rank-major, suit-minor).
var strRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
var strSuits = []string{"D", "C", "H", "S"}

var rankNames = map[string]string{
	"2":  "Two",
	"3":  "Three",
	"4":  "Four",
	"5":  "Five",
	"6":  "Six",
	"7":  "Seven",
	"8":  "Eight",
	"9":  "Nine",
	"10": "Ten",
	"J":  "Jack",
	"Q":  "Queen",
	"K":  "King",
	"A":  "Ace",
}

var suitNames = map[string]string{
	"D": "Diamonds",
	"C": "Clubs",
	"H": "Hearts",
	"S": "Spades",
}

var rankToIndex = map[string]int{}
var suitToIndex = map[string]int{}

func init() {
	for i, r := range strRanks {
		rankToIndex[r] = i
	}
	for i, s := range strSuits {
		suitToIndex[s] = i
	}
}

// Card is an immutable value object. Value and Name are derived from
// Rank and Suit at construction; Value is a bijection onto [1, 52].
type Card struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
	Name  string `json:"name"`
}

func RankIndex(rank string) (int, error) {
	i, ok := rankToIndex[rank]
	if !ok {
		return 0, InvalidRankError{Rank: rank}
	}
	return i, nil
}

func SuitIndex(suit string) (int, error) {
	i, ok := suitToIndex[suit]
	if !ok {
		return 0, InvalidSuitError{Suit: suit}
	}
	return i, nil
}

func NewCard(rank string, suit string) (Card, error) {
	rankIdx, err := RankIndex(rank)
	if err != nil {
		return Card{}, err
	}
	suitIdx, err := SuitIndex(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Rank:  rank,
		Suit:  suit,
		Value: 4*rankIdx + suitIdx + 1,
		Name:  rankNames[rank] + " of " + suitNames[suit],
	}, nil
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// HigherThan reports whether c outranks other in the total card order.
func (c Card) HigherThan(other Card) bool {
	return c.Value > other.Value
}

func (c Card) LowerThan(other Card) bool {
	return c.Value < other.Value
}

func (c Card) Equals(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}
