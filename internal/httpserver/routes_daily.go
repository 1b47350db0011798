// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
//   - GET  /daily      → today's date key
//   - POST /daily/new  → start a game on today's shared secret
//
// The secret comes from daily.Picker, so every player gets the same word
// for a UTC day. Once started, a daily game is played through the regular
// token-gated /game routes.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-engine/internal/daily"
)

// dailyRes is returned by /daily/new.
type dailyRes struct {
	newGameRes
	Date string `json:"date"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"date": daily.DateKey(time.Now())})
		})
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	res, ok := s.startGame(w, r, s.daily)
	if !ok {
		return
	}
	res.Mode = "daily"
	writeJSON(w, http.StatusCreated, dailyRes{newGameRes: res, Date: daily.DateKey(time.Now())})
}
