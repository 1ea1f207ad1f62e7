package game

import (
	"fmt"

	"hilo.cards/server/util"
	"hilo.cards/server/util/random"
)

var GameManager *Manager

// CreateGameManager wires the manager from the environment: the persist
// method selects between the redis and the in-memory tracker.
func CreateGameManager(users UserResolver, config Config) *Manager {
	if GameManager != nil {
		return GameManager
	}

	var persist PersistGameState
	var persistMethod = util.Env.GetPersistMethod()
	if persistMethod == "redis" {
		redisHost := util.Env.GetRedisHost()
		redisPort := util.Env.GetRedisPort()
		redisPW := util.Env.GetRedisPW()
		redisDB := util.Env.GetRedisDB()
		persist = NewRedisGameStateTracker(fmt.Sprintf("%s:%d", redisHost, redisPort), redisPW, redisDB)
	} else {
		persist = NewMemoryGameStateTracker()
	}

	GameManager = NewManager(users, persist, config, random.NewShuffleRNG())
	return GameManager
}
