package internal

import (
	"fmt"

	"hilo.cards/server/util"
)

func GetUsersConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		util.Env.GetPostgresHost(),
		util.Env.GetPostgresPort(),
		util.Env.GetPostgresUser(),
		util.Env.GetPostgresPW(),
		util.Env.GetPostgresDB(),
		util.Env.GetPostgresSSLMode(),
	)
}
