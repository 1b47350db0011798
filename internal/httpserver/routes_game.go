// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game.
//   - POST /game/new        → start a game, returns {gameId, token, game}
//   - GET  /game            → current snapshot
//   - POST /game/letter     → {row, col, letter}
//   - POST /game/backspace  → {row, col}
//   - POST /game/cursor     → {dir: "left"|"right"}
//   - POST /game/submit     → evaluate the active row
//   - POST /game/guess      → {guess}: fill the active row and evaluate
//   - POST /game/reset      → new secret, empty board
//
// Every route except /game/new requires the session token.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleGet)
			r.Post("/letter", s.handleLetter)
			r.Post("/backspace", s.handleBackspace)
			r.Post("/cursor", s.handleCursor)
			r.Post("/submit", s.handleSubmit)
			r.Post("/guess", s.handleGuess)
			r.Post("/reset", s.handleReset)
		})
	})
	s.mountDaily(r)
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}
type newGameRes struct {
	GameID string        `json:"gameId"`
	Token  string        `json:"token"`
	Mode   string        `json:"mode"`
	Game   game.Snapshot `json:"game"`
}

// handleNewGame creates and starts a session and hands back its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var picker game.SecretPicker
	switch req.Mode {
	case "", "random":
		req.Mode = "random"
		picker = s.random
	case "daily":
		picker = s.daily
	default:
		writeError(w, http.StatusBadRequest, "bad_mode")
		return
	}
	res, ok := s.startGame(w, r, picker)
	if !ok {
		return
	}
	res.Mode = req.Mode
	writeJSON(w, http.StatusCreated, res)
}

// startGame builds a session with picker, stores it and signs its token.
// On failure the response has already been written.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, picker game.SecretPicker) (newGameRes, bool) {
	g := game.NewSession(
		game.WithDictionary(s.dict),
		game.WithPicker(picker),
		game.WithLogger(log.Logger),
	)
	if err := g.Start(); err != nil {
		s.fail(w, err)
		return newGameRes{}, false
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return newGameRes{}, false
	}
	tok, exp, err := s.tokens.sign(g.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return newGameRes{}, false
	}
	setCookie(w, tok, exp)
	return newGameRes{GameID: g.ID(), Token: tok, Game: g.Snapshot()}, true
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Session) (any, error) {
		return g.Snapshot(), nil
	})
}

// cellReq addresses one cell of the active row.
type cellReq struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter,omitempty"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if !decode(w, r, &req) {
		return
	}
	ch, size := utf8.DecodeRuneInString(req.Letter)
	if size == 0 || size != len(req.Letter) {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	s.withGame(w, r, func(g *game.Session) (any, error) {
		if err := g.EnterLetter(req.Row, req.Col, ch); err != nil {
			return nil, err
		}
		return g.Snapshot(), nil
	})
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if !decode(w, r, &req) {
		return
	}
	s.withGame(w, r, func(g *game.Session) (any, error) {
		if err := g.Backspace(req.Row, req.Col); err != nil {
			return nil, err
		}
		return g.Snapshot(), nil
	})
}

type cursorReq struct {
	Dir string `json:"dir"`
}

func (s *Server) handleCursor(w http.ResponseWriter, r *http.Request) {
	var req cursorReq
	if !decode(w, r, &req) {
		return
	}
	var move func(*game.Session) error
	switch req.Dir {
	case "left":
		move = (*game.Session).MoveLeft
	case "right":
		move = (*game.Session).MoveRight
	default:
		writeError(w, http.StatusBadRequest, "bad_dir")
		return
	}
	s.withGame(w, r, func(g *game.Session) (any, error) {
		if err := move(g); err != nil {
			return nil, err
		}
		return g.Snapshot(), nil
	})
}

// submitRes is returned by /game/submit and /game/guess.
type submitRes struct {
	Result game.SubmitResult `json:"result"`
	Game   game.Snapshot     `json:"game"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Session) (any, error) {
		res, err := g.Submit()
		if err != nil {
			return nil, err
		}
		return submitRes{Result: res, Game: g.Snapshot()}, nil
	})
}

type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !decode(w, r, &req) {
		return
	}
	s.withGame(w, r, func(g *game.Session) (any, error) {
		res, err := g.Guess(req.Guess)
		if err != nil {
			return nil, err
		}
		return submitRes{Result: res, Game: g.Snapshot()}, nil
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Session) (any, error) {
		if err := g.Reset(); err != nil {
			return nil, err
		}
		return g.Snapshot(), nil
	})
}

// withGame runs fn under the session lock and writes its result as JSON.
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(*game.Session) (any, error)) {
	var out any
	err := s.store.Update(r.Context(), gameID(r.Context()), func(g *game.Session) error {
		var err error
		out, err = fn(g)
		return err
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// fail maps engine and store errors to HTTP responses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Msg("request failed")
	}
	writeError(w, status, code)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrIncompleteRow):
		return http.StatusUnprocessableEntity, "incomplete_row"
	case errors.Is(err, game.ErrInvalidWord):
		return http.StatusUnprocessableEntity, "invalid_word"
	case errors.Is(err, game.ErrGameFinished):
		return http.StatusConflict, "game_finished"
	case errors.Is(err, game.ErrNotInProgress):
		return http.StatusConflict, "not_in_progress"
	case errors.Is(err, game.ErrInactiveRow):
		return http.StatusConflict, "inactive_row"
	case errors.Is(err, game.ErrOutOfBounds):
		return http.StatusBadRequest, "out_of_bounds"
	case errors.Is(err, game.ErrInvalidLetter):
		return http.StatusBadRequest, "invalid_letter"
	case errors.Is(err, game.ErrDictionaryNotReady):
		return http.StatusServiceUnavailable, "dictionary_not_ready"
	case errors.Is(err, game.ErrEmptyDictionary):
		return http.StatusServiceUnavailable, "empty_dictionary"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	}
	return http.StatusInternalServerError, "internal"
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}
