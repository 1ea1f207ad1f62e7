package game

import (
	"fmt"
	"math/rand"
	"sync"

	cmap "github.com/orcaman/concurrent-map"

	"hilo.cards/server/hilo"
	"hilo.cards/server/logging"
	"hilo.cards/server/util"
)

var gameLogger = logging.GetZeroLogger("game::manager", nil)

// UserResolver supplies the display name for a player id. The REST layer
// wires the user repository in here; tests use an in-memory map.
type UserResolver interface {
	Username(playerID uint64) (string, error)
}

// Manager runs the round lifecycle for every player. It owns the persist
// tracker and serializes round mutations per player; the engine itself
// assumes exclusive access to a GameState for the duration of a call.
type Manager struct {
	users            UserResolver
	gameStatePersist PersistGameState
	config           Config
	rng              *rand.Rand
	playerLocks      cmap.ConcurrentMap
	rngLock          sync.Mutex
}

func NewManager(users UserResolver, persist PersistGameState, config Config, rng *rand.Rand) *Manager {
	return &Manager{
		users:            users,
		gameStatePersist: persist,
		config:           config,
		rng:              rng,
		playerLocks:      cmap.New(),
	}
}

func (m *Manager) playerLock(playerID uint64) *sync.Mutex {
	key := fmt.Sprintf("%d", playerID)
	m.playerLocks.SetIfAbsent(key, &sync.Mutex{})
	v, _ := m.playerLocks.Get(key)
	return v.(*sync.Mutex)
}

// shuffle hands a guarded rng to the engine. Deck shuffles are the only
// shared mutable state between players.
func (m *Manager) withRNG(f func(rng *rand.Rand) error) error {
	m.rngLock.Lock()
	defer m.rngLock.Unlock()
	return f(m.rng)
}

// StartRound opens the next round for the player: a brand-new game for
// first-timers and bankrupt players, otherwise a new round on the existing
// game state.
func (m *Manager) StartRound(playerID uint64) (*hilo.GameState, error) {
	lock := m.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	gs, err := m.gameStatePersist.Load(playerID)
	if err != nil {
		if _, notFound := err.(GameNotFoundError); notFound {
			return m.createGame(playerID)
		}
		return nil, err
	}

	if gs.IsBankrupt() {
		gameLogger.Info().
			Uint64(logging.PlayerIDKey, playerID).
			Str(logging.PlayerNameKey, gs.PlayerName).
			Msg("Player is bankrupt. Restarting with a fresh game.")
		return m.createGame(playerID)
	}

	if !gs.RoundEnded {
		return nil, RoundNotEndedError{}
	}

	err = m.withRNG(func(rng *rand.Rand) error {
		_, e := hilo.InitRound(gs, rng)
		return e
	})
	if err != nil {
		return nil, err
	}

	if err := m.gameStatePersist.Save(playerID, gs); err != nil {
		return nil, err
	}
	util.Metrics.RoundStarted()
	gameLogger.Info().
		Uint64(logging.PlayerIDKey, playerID).
		Str(logging.PlayerNameKey, gs.PlayerName).
		Int(logging.RoundKey, gs.Round).
		Msg("Round started")
	return gs, nil
}

func (m *Manager) createGame(playerID uint64) (*hilo.GameState, error) {
	username, err := m.users.Username(playerID)
	if err != nil {
		return nil, err
	}

	var gs *hilo.GameState
	err = m.withRNG(func(rng *rand.Rand) error {
		var e error
		gs, e = hilo.InitGameState(username, rng)
		return e
	})
	if err != nil {
		return nil, err
	}
	gs.Money = m.config.StartingBalance

	if err := m.gameStatePersist.Save(playerID, gs); err != nil {
		return nil, err
	}
	util.Metrics.NewGameCreated()
	util.Metrics.RoundStarted()
	util.Metrics.SetActivePlayersCount(m.playerLocks.Count())
	gameLogger.Info().
		Uint64(logging.PlayerIDKey, playerID).
		Str(logging.PlayerNameKey, username).
		Int(logging.MoneyKey, gs.Money).
		Msg("New game created")
	return gs, nil
}

// EndRound resolves the open round with the player's prediction and wager.
func (m *Manager) EndRound(playerID uint64, prediction hilo.Prediction, bet int) (*hilo.GameState, error) {
	lock := m.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	gs, err := m.gameStatePersist.Load(playerID)
	if err != nil {
		return nil, err
	}

	if !gs.RoundStarted {
		return nil, RoundNotStartedError{}
	}

	if bet < m.config.MinBet {
		return nil, hilo.InvalidBetError{Bet: bet, Money: gs.Money}
	}

	if _, err := hilo.GetRoundResult(gs, prediction, bet); err != nil {
		return nil, err
	}

	if err := m.gameStatePersist.Save(playerID, gs); err != nil {
		return nil, err
	}
	util.Metrics.RoundResolved()
	if gs.IsBankrupt() {
		util.Metrics.PlayerWentBankrupt()
	}
	gameLogger.Info().
		Uint64(logging.PlayerIDKey, playerID).
		Str(logging.PlayerNameKey, gs.PlayerName).
		Int(logging.RoundKey, gs.Round).
		Str(logging.PredictionKey, prediction.String()).
		Int(logging.BetKey, bet).
		Int(logging.MoneyKey, gs.Money).
		Bool("win", *gs.Win).
		Msg("Round resolved")
	return gs, nil
}

// CurrentState returns the latest persisted game state for the player.
func (m *Manager) CurrentState(playerID uint64) (*hilo.GameState, error) {
	lock := m.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	return m.gameStatePersist.Load(playerID)
}
