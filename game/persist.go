package game

import "hilo.cards/server/hilo"

// PersistGameState stores the latest game state per player. The round
// operations load, mutate and save through this interface; swapping the
// redis tracker for the memory tracker keeps tests free of I/O.
type PersistGameState interface {
	Load(playerID uint64) (*hilo.GameState, error)
	Save(playerID uint64, state *hilo.GameState) error
	Remove(playerID uint64) error
}
