package game

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"hilo.cards/server/hilo"
)

type RedisGameStateTracker struct {
	rdclient *redis.Client
}

func NewRedisGameStateTracker(redisURL string, redisPW string, redisDB int) *RedisGameStateTracker {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisGameStateTracker{
		rdclient: rdclient,
	}
}

func gameStateKey(playerID uint64) string {
	return fmt.Sprintf("gamestate:%d", playerID)
}

func (r *RedisGameStateTracker) Load(playerID uint64) (*hilo.GameState, error) {
	stateBytes, err := r.rdclient.Get(context.Background(), gameStateKey(playerID)).Result()
	if err == redis.Nil {
		return nil, GameNotFoundError{PlayerID: playerID}
	} else if err != nil {
		return nil, err
	}
	gameState := &hilo.GameState{}
	err = json.Unmarshal([]byte(stateBytes), gameState)
	if err != nil {
		return nil, err
	}
	return gameState, nil
}

func (r *RedisGameStateTracker) Save(playerID uint64, state *hilo.GameState) error {
	stateInBytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.rdclient.Set(context.Background(), gameStateKey(playerID), stateInBytes, 0).Err()
}

func (r *RedisGameStateTracker) Remove(playerID uint64) error {
	return r.rdclient.Del(context.Background(), gameStateKey(playerID)).Err()
}
