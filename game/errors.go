package game

import "fmt"

type GameNotFoundError struct {
	PlayerID uint64
}

func (e GameNotFoundError) Error() string {
	return fmt.Sprintf("Game state for player [%d] is not found", e.PlayerID)
}

type RoundNotEndedError struct{}

func (e RoundNotEndedError) Error() string {
	return "Current round has not ended"
}

type RoundNotStartedError struct{}

func (e RoundNotStartedError) Error() string {
	return "Round has not been started"
}
