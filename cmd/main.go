package main

import (
	"log"
	"os"

	"github.com/d-chambers/prolix/internal/cli"
	"github.com/d-chambers/prolix/internal/client"
	"github.com/d-chambers/prolix/internal/config"
	"github.com/d-chambers/prolix/internal/repository"
	"github.com/d-chambers/prolix/internal/service"
	"github.com/d-chambers/prolix/internal/storage/db"
	"github.com/d-chambers/prolix/internal/store"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.Store)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(database)
	words := store.NewWords(cfg.Store.WordsPath, logger)
	clients := client.InitClients()
	services := service.InitServices(clients, words, repos, logger)

	root := cli.New(cfg, services, logger).Root()
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
