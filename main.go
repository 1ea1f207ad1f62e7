package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"hilo.cards/server/auth"
	"hilo.cards/server/game"
	"hilo.cards/server/internal"
	"hilo.cards/server/internal/user"
	"hilo.cards/server/logging"
	"hilo.cards/server/rest"
	"hilo.cards/server/util"
	"hilo.cards/server/util/random"
)

var configFile *string
var mainLogger = logging.GetZeroLogger("main::main", nil)

const usernameCacheSize = 1024

func init() {
	configFile = flag.String("config", "", "YAML file containing game rules")
}

func main() {
	// Global random seed that is used by all games.
	rand.Seed(random.NewSeed())

	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logLevel := util.Env.GetZeroLogLogLevel()
	fmt.Printf("Setting log level to %s\n", logLevel)
	zerolog.SetGlobalLevel(logLevel)
	flag.Parse()

	config := game.DefaultConfig()
	if *configFile != "" {
		var err error
		config, err = game.ParseConfig(*configFile)
		if err != nil {
			return errors.Wrap(err, "Error while parsing game config")
		}
	}

	db, err := sqlx.Connect("postgres", internal.GetUsersConnStr())
	if err != nil {
		return errors.Wrap(err, "Error while connecting to the users database")
	}
	users := user.NewRepository(db)
	err = users.EnsureSchema()
	if err != nil {
		return errors.Wrap(err, "Error while preparing the users schema")
	}

	usernames, err := user.NewCache(usernameCacheSize, users)
	if err != nil {
		return errors.Wrap(err, "Error while creating the username cache")
	}

	manager := game.CreateGameManager(usernames, config)
	tokens := auth.NewTokenAuthority(util.Env.GetJwtSecret(), util.Env.GetTokenExpiryMinutes())

	server := rest.NewServer(users, manager, tokens)
	rest.RunRestServer(server)
	return nil
}
