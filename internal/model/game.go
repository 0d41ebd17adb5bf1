package model

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultTurnOverDelay = time.Second

// Outcome says what a square activation did.
type Outcome string

const (
	OutcomeIgnored   Outcome = "ignored"
	OutcomeSelected  Outcome = "selected"
	OutcomeMoved     Outcome = "moved"
	OutcomeDiscarded Outcome = "discarded"
)

// Selection is the piece picked up and waiting for a destination.
type Selection struct {
	Square Square `json:"square"`
	Piece  Piece  `json:"piece"`
}

// Game is a single hot-seat game. All methods are safe for concurrent use;
// state changes are serialized on one mutex.
type Game struct {
	mu        sync.Mutex
	board     *BoardState
	selection *Selection
	layout    Layout
	lastMove  *Move

	scheduler     Scheduler
	turnOverDelay time.Duration
	onTurnOver    func(GameState)
	// generation is bumped on reset so hooks scheduled before it become no-ops.
	generation uint64
	nextTaskID uint64
	pending    map[uint64]func()

	logger *zap.Logger
}

// GameState is a snapshot for rendering.
type GameState struct {
	Board     map[Square]Piece `json:"board"`
	ToMove    Side             `json:"toMove"`
	Viewer    Side             `json:"viewer"`
	Selection *Square          `json:"selection"`
	Marked    []Square         `json:"marked"`
	Layout    Layout           `json:"layout"`
	LastMove  *Move            `json:"lastMove"`
}

type Option func(*Game)

func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.scheduler = s }
}

func WithTurnOverDelay(d time.Duration) Option {
	return func(g *Game) { g.turnOverDelay = d }
}

// WithTurnOverHook registers fn to run after the layout has been reversed.
// fn is called without the game lock held.
func WithTurnOverHook(fn func(GameState)) Option {
	return func(g *Game) { g.onTurnOver = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func WithBoard(b *BoardState) Option {
	return func(g *Game) { g.board = b }
}

func NewGame(viewer Side, opts ...Option) *Game {
	g := &Game{
		board:         NewBoardState(viewer),
		layout:        NewLayout(),
		scheduler:     NewTimerScheduler(),
		turnOverDelay: DefaultTurnOverDelay,
		pending:       make(map[uint64]func()),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OnSquareActivated is the single input from the board UI. A square holding
// a piece of the side to move is (re)selected; any other square is a move
// attempt if something is selected, and ignored otherwise.
func (g *Game) OnSquareActivated(sq Square) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.IsOccupiedByActiveSide(sq) {
		g.selectPiece(sq)
		return OutcomeSelected
	}
	if g.selection == nil {
		return OutcomeIgnored
	}
	if _, ok := g.attemptMove(sq); ok {
		return OutcomeMoved
	}
	return OutcomeDiscarded
}

// SelectPiece picks up the piece on sq if it belongs to the side to move.
// An existing selection is replaced.
func (g *Game) SelectPiece(sq Square) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectPiece(sq)
}

func (g *Game) selectPiece(sq Square) bool {
	if !g.board.IsOccupiedByActiveSide(sq) {
		return false
	}
	piece, _ := g.board.Occupant(sq)
	g.selection = &Selection{Square: sq, Piece: piece}
	return true
}

// AttemptMove plays the selected piece to sq. The selection is cleared
// whether or not the move was legal; an illegal move changes nothing else.
func (g *Game) AttemptMove(sq Square) (Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attemptMove(sq)
}

func (g *Game) attemptMove(to Square) (Move, bool) {
	if g.selection == nil {
		return Move{}, false
	}
	sel := *g.selection
	g.selection = nil

	if !IsLegal(g.board, Candidate{Piece: sel.Piece, From: sel.Square, To: to}) {
		g.logger.Debug("move discarded",
			zap.Stringer("piece", sel.Piece),
			zap.Stringer("from", sel.Square),
			zap.Stringer("to", to))
		return Move{}, false
	}

	mv := g.executeMove(sel, to)
	g.scheduleTurnOver()
	g.logger.Info("move applied",
		zap.String("notation", mv.Notation),
		zap.Stringer("piece", mv.Piece),
		zap.Stringer("from", mv.From),
		zap.Stringer("to", mv.To),
		zap.String("toMove", string(g.board.ToMove())))
	return mv, true
}

func (g *Game) executeMove(sel Selection, to Square) Move {
	mv := Move{Piece: sel.Piece, From: sel.Square, To: to}
	if captured, ok := g.board.Occupant(to); ok {
		mv.Captured = &captured
	}

	placed := sel.Piece
	if placed.Type == Pawn && to.Rank == placed.Side.farRank() {
		placed.Type = Queen
		mv.Promoted = true
	}
	g.board.Clear(sel.Square)
	g.board.SetOccupant(to, placed)
	g.board.switchTurn()

	mv.Notation = mv.notation()
	g.lastMove = &mv
	return mv
}

// scheduleTurnOver must be called with g.mu held.
func (g *Game) scheduleTurnOver() {
	id := g.nextTaskID
	g.nextTaskID++
	gen := g.generation
	g.pending[id] = g.scheduler.AfterFunc(g.turnOverDelay, func() {
		g.turnOver(id, gen)
	})
}

// turnOver reverses the layout. Moves made before it fires are not waited
// for, so two quick moves produce two reversals in firing order.
func (g *Game) turnOver(id, gen uint64) {
	g.mu.Lock()
	if gen != g.generation {
		g.mu.Unlock()
		return
	}
	delete(g.pending, id)
	g.layout = g.layout.Reversed()
	state := g.stateLocked()
	hook := g.onTurnOver
	g.mu.Unlock()

	g.logger.Debug("board turned over", zap.String("top-left", state.Layout[0].Square.String()))
	if hook != nil {
		hook(state)
	}
}

// Reset restores the starting position and cancels pending turn-over hooks.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, cancel := range g.pending {
		cancel()
		delete(g.pending, id)
	}
	g.generation++
	g.board = NewBoardState(g.board.Viewer())
	g.selection = nil
	g.layout = NewLayout()
	g.lastMove = nil
	g.logger.Info("game reset")
}

// PendingTurnOvers reports how many turn-over hooks have been scheduled but not yet run.
func (g *Game) PendingTurnOvers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *Game) Occupant(sq Square) (Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Occupant(sq)
}

func (g *Game) ToMove() Side {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ToMove()
}

func (g *Game) Selection() (Selection, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selection == nil {
		return Selection{}, false
	}
	return *g.selection, true
}

// LegalTargets lists where the piece on from may go, judged for the side to move.
func (g *Game) LegalTargets(from Square) []Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return LegalTargets(g.board, from)
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	state := GameState{
		Board:  g.board.Pieces(),
		ToMove: g.board.ToMove(),
		Viewer: g.board.Viewer(),
		Marked: []Square{},
		Layout: append(Layout(nil), g.layout...),
	}
	if g.selection != nil {
		sq := g.selection.Square
		state.Selection = &sq
		if targets := LegalTargets(g.board, sq); targets != nil {
			state.Marked = targets
		}
	}
	if g.lastMove != nil {
		mv := *g.lastMove
		state.LastMove = &mv
	}
	return state
}
