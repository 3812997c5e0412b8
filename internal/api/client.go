package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrOpponentCount rejects a table that would be empty or oversubscribed
// before any request is sent.
var ErrOpponentCount = errors.New("opponent count must be between 1 and 7")

// StatusError is a non-2xx response from the authority, carrying whatever
// error code its JSON body held.
type StatusError struct {
	Status int
	Code   string
}

func (e *StatusError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("authority returned status %d", e.Status)
	}
	return fmt.Sprintf("authority returned status %d: %s", e.Status, e.Code)
}

type StartGameRequest struct {
	Name          string `json:"name"`
	CPUPlayers    int    `json:"cpu_players"`
	GeminiPlayers int    `json:"gemini_players"`
}

func (r StartGameRequest) Validate() error {
	n := r.CPUPlayers + r.GeminiPlayers
	if n < 1 || n > 7 {
		return ErrOpponentCount
	}
	return nil
}

type actionRequest struct {
	Action string `json:"action"`
	Amount int64  `json:"amount"`
}

// Client speaks the four-endpoint protocol of the game authority. All four
// exchanges are fire-and-forget except GameState, whose payload drives every
// rendering decision.
type Client struct {
	baseURL string
	http    *http.Client
	session string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: NewID(),
	}
}

func (c *Client) SessionID() string {
	return c.session
}

func (c *Client) StartGame(ctx context.Context, req StartGameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.postJSON(ctx, "/start_game", req)
}

func (c *Client) GameState(ctx context.Context) (GameState, error) {
	var state GameState
	err := c.getJSON(ctx, "/game_state", &state)
	return state, err
}

func (c *Client) PlayerAction(ctx context.Context, action ActionType, amount int64) error {
	return c.postJSON(ctx, "/player_action", actionRequest{Action: string(action), Amount: amount})
}

func (c *Client) NextRound(ctx context.Context) error {
	return c.postJSON(ctx, "/next_round", nil)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := NewID()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("X-Session-ID", c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("request_id", requestID).Str("path", req.URL.Path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		log.Debug().Int("status", resp.StatusCode).Str("request_id", requestID).
			Str("path", req.URL.Path).Str("code", body.Error).Msg("request rejected")
		return &StatusError{Status: resp.StatusCode, Code: body.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
