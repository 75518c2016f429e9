package main

import (
	"log"

	"github.com/SARIKA005/smartspend/internal/bot"
	"github.com/SARIKA005/smartspend/internal/charts"
	"github.com/SARIKA005/smartspend/internal/config"
	"github.com/SARIKA005/smartspend/internal/insight"
	"github.com/SARIKA005/smartspend/internal/repository"
	"github.com/SARIKA005/smartspend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := repository.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	tracker := service.NewTracker(store)
	advisor := insight.NewAdvisor()

	b, err := bot.New(cfg.TelegramToken, tracker, advisor, charts.NewGenerator())
	if err != nil {
		log.Fatal(err)
	}

	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
}
