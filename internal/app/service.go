package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/codex-gobblet/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound     = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNotAPlayer   = errors.New("not a player")
	ErrNotYourPiece = errors.New("not your piece")
	ErrGameOver     = errors.New("game over")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID      string
	Board   *domain.Board
	Turn    domain.Color
	Winner  domain.Color
	Over    bool
	Moves   int
	Black   string
	White   string
	Created time.Time
	Updated time.Time
}

func newGameState(id string) *GameState {
	now := time.Now()
	return &GameState{ID: id, Board: domain.NewBoard(), Turn: domain.Black, Created: now, Updated: now}
}

// snapshot copies the state so callers never share the live board.
func (gs *GameState) snapshot() *GameState {
	cp := *gs
	cp.Board = gs.Board.Clone()
	return &cp
}

// Seat returns the color held by playerID, or NoColor for spectators.
func (gs *GameState) Seat(playerID string) domain.Color {
	switch {
	case playerID == "":
		return domain.NoColor
	case gs.Black == playerID:
		return domain.Black
	case gs.White == playerID:
		return domain.White
	}
	return domain.NoColor
}

// subscriber is guarded by Service.mu; ch is only sent on or closed under it.
type subscriber struct {
	ch     chan []byte
	closed bool
}

func (s *subscriber) close() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Service manages games and subscribers. A single mutex guards every game.
type Service struct {
	mu     sync.Mutex
	games  map[string]*GameState
	subs   map[string]map[*subscriber]struct{}
	render func(GameState) []byte
	log    *slog.Logger
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// NewService creates a service with a renderer that encodes nothing.
func NewService(logger *slog.Logger) *Service {
	return NewServiceWithRenderer(logger, func(gs GameState) []byte { return nil })
}

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(logger *slog.Logger, renderer func(GameState) []byte) *Service {
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Service{
		games:  make(map[string]*GameState),
		subs:   make(map[string]map[*subscriber]struct{}),
		render: renderer,
		log:    logger.With("component", "app"),
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs := newGameState(uuid.NewString())
	s.games[gs.ID] = gs
	s.log.Info("game created", "game", gs.ID)
	return gs.snapshot(), nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return gs.snapshot(), true
}

// Join assigns a seat to the player if available; returns NoColor for spectators.
func (s *Service) Join(id, playerID string) (domain.Color, *GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return domain.NoColor, nil, ErrNotFound
	}
	side := domain.NoColor
	if gs.Black == "" || gs.Black == playerID {
		gs.Black = playerID
		side = domain.Black
	} else if gs.White == "" || gs.White == playerID {
		gs.White = playerID
		side = domain.White
	}
	gs.Updated = time.Now()
	s.log.Debug("player joined", "game", id, "player", playerID, "side", side)
	return side, gs.snapshot(), nil
}

// Moves returns the moves available to the side to move. It is empty once the game is over.
func (s *Service) Moves(id string) (domain.Color, []domain.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return domain.NoColor, nil, ErrNotFound
	}
	if gs.Over {
		return gs.Turn, nil, nil
	}
	return gs.Turn, gs.Board.AvailableMoves(gs.Turn), nil
}

// Play validates seat and turn, applies a move written in notation, updates
// timestamps, and broadcasts. On error the game is unchanged.
func (s *Service) Play(id, playerID, move string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	seat := gs.Seat(playerID)
	if seat == domain.NoColor {
		return nil, ErrNotAPlayer
	}
	if gs.Over {
		return nil, ErrGameOver
	}
	if seat != gs.Turn {
		return nil, ErrNotYourTurn
	}
	m, err := gs.Board.ParseMove(seat, move)
	if err != nil {
		return nil, err
	}
	if m.Piece.Color != seat {
		return nil, ErrNotYourPiece
	}
	if err := gs.Board.Apply(m); err != nil {
		s.log.Debug("move rejected", "game", id, "side", seat, "move", move, "error", err)
		return nil, err
	}
	gs.Moves++
	gs.Updated = time.Now()
	s.advanceLocked(gs)

	cp := gs.snapshot()
	s.log.Debug("move applied", "game", id, "side", seat, "move", m.String(), "moves", cp.Moves)
	if cp.Over {
		s.log.Info("game over", "game", id, "winner", cp.Winner, "moves", cp.Moves)
	}
	s.broadcastLocked(id, s.render(*cp))
	return cp, nil
}

// broadcastLocked sends payload to every subscriber of id without blocking.
// Subscribers whose buffer is full are closed and dropped.
func (s *Service) broadcastLocked(id string, payload []byte) {
	set := s.subs[id]
	dropped := 0
	for sub := range set {
		select {
		case sub.ch <- payload:
		default:
			sub.close()
			delete(set, sub)
			dropped++
		}
	}
	if dropped > 0 {
		s.log.Debug("dropped slow subscribers", "game", id, "count", dropped)
	}
}

// advanceLocked settles the game after a move: a completed line ends it, as
// does a side to move with nothing to play.
func (s *Service) advanceLocked(gs *GameState) {
	next := gs.Turn.Opponent()
	winner, over := gs.Board.Outcome(next)
	if !over {
		gs.Turn = next
		return
	}
	gs.Over = true
	gs.Winner = winner
}

// Subscribe registers a subscriber for a game. It returns a channel that
// receives rendered payloads and an unsubscribe func, or ErrNotFound.
// The subscription also ends when ctx is done.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return nil, nil, ErrNotFound
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub, nil
}
