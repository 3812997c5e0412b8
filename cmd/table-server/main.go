package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"holdem-console/internal/config"
	"holdem-console/internal/logging"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(logCfg); err != nil {
		panic(err)
	}
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	srv := newServer(cfg)
	log.Info().Str("addr", cfg.HTTPAddr).Msg("table server listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, newRouter(srv)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
