package game

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"hilo.cards/server/hilo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MemoryGameStateTracker struct {
	activeGames map[string][]byte
}

func NewMemoryGameStateTracker() *MemoryGameStateTracker {
	return &MemoryGameStateTracker{
		activeGames: make(map[string][]byte),
	}
}

func (m *MemoryGameStateTracker) Load(playerID uint64) (*hilo.GameState, error) {
	return m.load(fmt.Sprintf("%d", playerID), playerID)
}

func (m *MemoryGameStateTracker) load(key string, playerID uint64) (*hilo.GameState, error) {
	if stateBytes, ok := m.activeGames[key]; ok {
		gameState := hilo.GameState{}
		err := json.Unmarshal(stateBytes, &gameState)
		if err != nil {
			return nil, err
		}
		return &gameState, nil
	}
	return nil, GameNotFoundError{PlayerID: playerID}
}

func (m *MemoryGameStateTracker) Save(playerID uint64, state *hilo.GameState) error {
	return m.save(fmt.Sprintf("%d", playerID), state)
}

func (m *MemoryGameStateTracker) save(key string, state *hilo.GameState) error {
	stateInBytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.activeGames[key] = stateInBytes
	return nil
}

func (m *MemoryGameStateTracker) Remove(playerID uint64) error {
	key := fmt.Sprintf("%d", playerID)
	if _, ok := m.activeGames[key]; ok {
		delete(m.activeGames, key)
	}
	return nil
}
