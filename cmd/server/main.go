package main

import (
	"flag"

	httpapi "gamma/internal/api/http"
	"gamma/internal/api/ws"
	"gamma/internal/config"
	"gamma/internal/room"
	"gamma/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "", "optional yaml config file")

func main() {
	flag.Parse()

	cfg := config.Load()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			logx.Must(err)
		}
	}
	logx.Must(config.SetupLogging(cfg.Log))
	gin.SetMode(gin.ReleaseMode)

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	logx.Infof("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logx.Must(err)
	}
}
