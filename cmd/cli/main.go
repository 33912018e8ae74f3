package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userlist/internal/client/cli"
	"github.com/dmitrijs2005/userlist/internal/client/config"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
