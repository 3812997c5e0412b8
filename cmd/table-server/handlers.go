package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"holdem-console/internal/api"
	"holdem-console/internal/config"
	"holdem-console/internal/table"
)

// server holds the one table this authority hosts, mirroring the hosted
// game's single-session model.
type server struct {
	cfg config.ServerConfig

	mu  sync.Mutex
	tbl *table.Table
}

func newServer(cfg config.ServerConfig) *server {
	return &server{cfg: cfg}
}

func (s *server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) startGameHandler(w http.ResponseWriter, r *http.Request) {
	var req api.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := req.Validate(); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_opponent_count")
		return
	}

	tbl := table.New(table.Rules{
		StartingChips: s.cfg.StartingChips,
		SmallBlind:    s.cfg.SmallBlind,
		BigBlind:      s.cfg.BigBlind,
		ThinkDelay:    time.Duration(s.cfg.OpponentThinkMS) * time.Millisecond,
	}, req.Name, req.CPUPlayers, req.GeminiPlayers, time.Now().UnixNano())

	if err := tbl.Start(); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "cannot_start")
		return
	}

	s.mu.Lock()
	s.tbl = tbl
	s.mu.Unlock()
	log.Info().Str("player", req.Name).Int("cpu", req.CPUPlayers).
		Int("gemini", req.GeminiPlayers).Msg("game started")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *server) gameStateHandler(w http.ResponseWriter, _ *http.Request) {
	tbl := s.table()
	if tbl == nil {
		writeHTTPError(w, http.StatusNotFound, "game_not_started")
		return
	}
	writeJSON(w, http.StatusOK, tbl.State())
}

func (s *server) playerActionHandler(w http.ResponseWriter, r *http.Request) {
	tbl := s.table()
	if tbl == nil {
		writeHTTPError(w, http.StatusBadRequest, "game_not_started")
		return
	}
	var req struct {
		Action string `json:"action"`
		Amount int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := tbl.HumanAction(api.ActionType(req.Action), req.Amount); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "not_your_turn")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *server) nextRoundHandler(w http.ResponseWriter, _ *http.Request) {
	tbl := s.table()
	if tbl == nil {
		writeHTTPError(w, http.StatusBadRequest, "game_not_started")
		return
	}
	if err := tbl.NextRound(); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "hand_in_progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *server) table() *table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tbl
}
