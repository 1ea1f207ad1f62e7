package hilo

import "fmt"

type InvalidRankError struct {
	Rank string
}

func (e InvalidRankError) Error() string {
	return fmt.Sprintf("%s is not a valid rank", e.Rank)
}

type InvalidSuitError struct {
	Suit string
}

func (e InvalidSuitError) Error() string {
	return fmt.Sprintf("%s is not a valid suit", e.Suit)
}

type EmptyDeckError struct {
	Index int
}

func (e EmptyDeckError) Error() string {
	return fmt.Sprintf("No card to draw at position %d", e.Index)
}

type CardComparisonError struct {
	Msg string
}

func (e CardComparisonError) Error() string {
	return e.Msg
}

type InvalidBetError struct {
	Bet   int
	Money int
}

func (e InvalidBetError) Error() string {
	if e.Bet < 1 {
		return fmt.Sprintf("Bet amount [%d] must be a positive integer", e.Bet)
	}
	return fmt.Sprintf("Bet amount [%d] exceeds player money [%d]", e.Bet, e.Money)
}

type InvalidPredictionError struct {
	Prediction string
}

func (e InvalidPredictionError) Error() string {
	return fmt.Sprintf("%s is not a valid prediction", e.Prediction)
}
