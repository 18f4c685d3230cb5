package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/codex-gobblet/internal/app"
	"github.com/jaminalder/codex-gobblet/internal/domain"
)

type handlers struct {
	svc       *app.Service
	tpl       *templates
	log       *slog.Logger
	heartbeat time.Duration
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) ([]byte, error) {
	return renderTemplate(h.tpl.board, "", newBoardView(gs, errMsg))
}

// writeHTML writes a rendered page, or logs the failure and answers 500.
func (h *handlers) writeHTML(w http.ResponseWriter, body []byte, err error) {
	if err != nil {
		h.log.Error("render failed", "error", err)
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	body, err := renderTemplate(h.tpl.index, "", nil)
	h.writeHTML(w, body, err)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		h.log.Error("create game failed", "error", err)
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// ensure cookie and auto-claim seat
	pid := ensurePlayerCookie(w, r)
	seat, gs, err := h.svc.Join(id, pid)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID    string
		Seat  string
		Board boardView
	}{ID: gs.ID, Seat: "spectator", Board: newBoardView(*gs, "")}
	if seat != domain.NoColor {
		data.Seat = seat.String()
	}

	// Render page with embedded board container
	body, err := renderTemplate(h.tpl.game, "", data)
	h.writeHTML(w, body, err)
}

func (h *handlers) join(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	_, gs, err := h.svc.Join(id, pid)
	if err != nil || gs == nil {
		http.NotFound(w, r)
		return
	}
	body, err := h.renderBoard(*gs, "")
	h.writeHTML(w, body, err)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	_ = r.ParseForm()
	move := r.Form.Get("move")
	gs, err := h.svc.Play(id, pid, move)
	var errMsg string
	if err != nil {
		if gs == nil {
			if g, ok := h.svc.Get(id); ok {
				gs = g
			}
		}
		errMsg = playErrorMessage(err)
	}
	if gs == nil {
		http.NotFound(w, r)
		return
	}
	body, err := h.renderBoard(*gs, errMsg)
	h.writeHTML(w, body, err)
}

func playErrorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrNotYourTurn):
		return "Not your turn"
	case errors.Is(err, app.ErrNotAPlayer):
		return "You are a spectator"
	case errors.Is(err, app.ErrNotYourPiece):
		return "That piece is not yours"
	case errors.Is(err, app.ErrGameOver):
		return "Game is over"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Could not read move"
	case errors.Is(err, domain.ErrIllegalMove):
		return "Illegal move"
	default:
		return "Invalid move"
	}
}

type moveJSON struct {
	Notation string  `json:"notation"`
	Size     int     `json:"size"`
	Color    string  `json:"color"`
	From     *[2]int `json:"from,omitempty"`
	To       [2]int  `json:"to"`
}

type movesJSON struct {
	Turn  string     `json:"turn"`
	Moves []moveJSON `json:"moves"`
}

func (h *handlers) moves(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	turn, moves, err := h.svc.Moves(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	out := movesJSON{Turn: turn.String(), Moves: make([]moveJSON, 0, len(moves))}
	for _, m := range moves {
		mj := moveJSON{
			Notation: m.String(),
			Size:     int(m.Piece.Size),
			Color:    m.Piece.Color.String(),
			To:       [2]int{m.End.X, m.End.Y},
		}
		if m.Start != nil {
			mj.From = &[2]int{m.Start.X, m.Start.Y}
		}
		out.Moves = append(out.Moves, mj)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.log.Error("encode moves failed", "game", id, "error", err)
	}
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.svc.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub, err := h.svc.Subscribe(ctx, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer unsub()
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			_, _ = io.WriteString(w, "event: board\n")
			for _, line := range strings.Split(string(b), "\n") {
				_, _ = fmt.Fprintf(w, "data: %s\n", line)
			}
			_, _ = io.WriteString(w, "\n")
			flusher.Flush()
		}
	}
}
