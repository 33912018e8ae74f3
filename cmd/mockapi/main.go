package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userlist/internal/logging"
	"github.com/dmitrijs2005/userlist/internal/mockapi"
	"github.com/dmitrijs2005/userlist/internal/mockapi/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	srv := mockapi.NewServer(cfg.Addr, mockapi.NewStore(), logger, cfg.ShutdownTimeout)
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "err", err)
		os.Exit(1)
	}

}
