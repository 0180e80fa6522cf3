package main

import (
	"fmt"
	"os"

	"teambalancer/internal/config"
	"teambalancer/internal/logger"
	migrate "teambalancer/internal/migrate"
	"teambalancer/internal/service"
	"teambalancer/internal/storage"
	"teambalancer/internal/storage/sqlite"
	"teambalancer/internal/tgbot"
	"teambalancer/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := storage.New(cfg.Server.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate.UpRosterDB(db); err != nil {
		return err
	}

	playerService := service.New(sqlite.New(db), log)

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(playerService, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(playerService, cfg.Server, log)
	if err != nil {
		return err
	}
	log.WithField("port", cfg.Server.Port).Info("starting server")
	return server.Serve()
}
