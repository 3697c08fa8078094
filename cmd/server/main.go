package main

import (
	httpapi "github.com/AiredaleDev/blorus/internal/api/http"
	"github.com/AiredaleDev/blorus/internal/api/ws"
	"github.com/AiredaleDev/blorus/internal/config"
	"github.com/AiredaleDev/blorus/internal/room"
	"github.com/AiredaleDev/blorus/internal/store"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	hub.SetManager(rm)

	r := httpapi.NewRouter(rm, hub)
	log.Infof("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
