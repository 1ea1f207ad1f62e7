package game

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hilo.cards/server/hilo"
)

// Config carries the game-table knobs layered on top of the engine.
type Config struct {
	StartingBalance int `yaml:"startingBalance"`
	MinBet          int `yaml:"minBet"`
}

func DefaultConfig() Config {
	return Config{
		StartingBalance: hilo.DefaultStartingMoney,
		MinBet:          1,
	}
}

func ParseConfig(configFile string) (Config, error) {
	bytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return Config{}, errors.Wrap(err, fmt.Sprintf("Error reading game config file [%s]", configFile))
	}

	data := DefaultConfig()
	err = yaml.Unmarshal(bytes, &data)
	if err != nil {
		return Config{}, errors.Wrap(err, fmt.Sprintf("Error parsing game config YAML file [%s]", configFile))
	}

	if data.StartingBalance < 1 {
		return Config{}, fmt.Errorf("Starting balance [%d] must be positive", data.StartingBalance)
	}
	if data.MinBet < 1 {
		return Config{}, fmt.Errorf("Minimum bet [%d] must be positive", data.MinBet)
	}
	return data, nil
}
