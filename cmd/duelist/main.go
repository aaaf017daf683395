package main

import (
	"fmt"
	"os"

	"duelist/internal/config"
	"duelist/internal/logging"
	"duelist/internal/storage"
	"duelist/internal/todo"
	"duelist/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	store, err := openStore(cfg)
	if err != nil {
		fmt.Printf("failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board, err := todo.NewBoard(store, cfg.FilterExpired)
	if err != nil {
		fmt.Printf("failed to load tasks: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "config", configPath, "backend", cfg.Backend)

	if err := ui.Run(board, cfg, logger); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (todo.Store, error) {
	if cfg.Backend == config.BackendSQLite {
		s, err := storage.Open(cfg.DBName, nil)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return todo.NewMemoryStore(nil), nil
}
