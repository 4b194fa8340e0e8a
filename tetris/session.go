package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// State is the phase of a session.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session is one game: a board, the piece queue, the falling piece, the hold
// slot and the score. All operations run to completion before returning;
// between calls a live session is always in StateFalling.
type Session struct {
	id       uuid.UUID
	cfg      Config
	board    *Board
	rand     Randomizer
	policy   ScoringPolicy
	observer Observer
	logger   *log.Logger

	state   State
	active  Piece
	held    Variant
	hasHeld bool
	canHold bool
	quit    bool

	score int
	lines int
	level int

	gravity time.Duration
	stats   Stats
}

// Option customizes a Session.
type Option func(*Session)

// WithBoard starts the session on b instead of an empty board. The board's
// dimensions replace the configured ones and the session takes ownership
// of it.
func WithBoard(b *Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// WithRandomizer replaces the randomizer selected by the config.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.rand = r
	}
}

// WithScoring replaces the scoring policy selected by the config.
func WithScoring(p ScoringPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithObserver registers an observer for session events.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession validates cfg, builds the session and spawns the first piece.
// If the first piece cannot be placed the session starts in StateGameOver.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		observer: NopObserver{},
		state:    StateSpawning,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = NewBoard(cfg.Width, cfg.Height)
	}
	s.cfg.Width, s.cfg.Height = s.board.Width(), s.board.Height()
	if s.rand == nil {
		s.rand = cfg.newRandomizer()
	}
	if s.policy == nil {
		s.policy = cfg.newScoring()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.With("session", s.id.String())
	s.level = s.policy.Level(0)

	s.spawnNext()
	return s, nil
}

// ID returns the unique id of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the config the session was created with. Width and Height
// always match the board, including one supplied with WithBoard.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.state == StateGameOver
}

// Quitted reports whether the session ended because of Quit rather than a
// blocked spawn.
func (s *Session) Quitted() bool {
	return s.quit
}

// Active returns the falling piece.
func (s *Session) Active() Piece {
	return s.active
}

// Ghost returns the position the falling piece would land at if dropped.
func (s *Session) Ghost() Piece {
	if s.state != StateFalling {
		return s.active
	}
	return s.board.Rest(s.active)
}

// Held returns the variant in the hold slot, if any.
func (s *Session) Held() (Variant, bool) {
	return s.held, s.hasHeld
}

// CanHold reports whether Hold would currently be accepted.
func (s *Session) CanHold() bool {
	return s.state == StateFalling && s.cfg.Hold && s.canHold
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int {
	return s.lines
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Preview returns up to n upcoming variants, capped by the configured
// preview length.
func (s *Session) Preview(n int) []Variant {
	return s.rand.Peek(min(n, s.cfg.Preview))
}

// Board returns a copy of the locked grid.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// DropInterval returns the current gravity period, never shorter than the
// configured floor.
func (s *Session) DropInterval() time.Duration {
	return max(s.cfg.MinDropInterval(), s.policy.DropInterval(s.level))
}

// MoveLeft shifts the falling piece one column left.
func (s *Session) MoveLeft() bool {
	if s.state != StateFalling || s.active.MinCol() <= 0 {
		return false
	}
	return s.try(s.active.Translate(0, -1))
}

// MoveRight shifts the falling piece one column right.
func (s *Session) MoveRight() bool {
	if s.state != StateFalling {
		return false
	}
	return s.try(s.active.Translate(0, 1))
}

// RotateCW turns the falling piece a quarter clockwise. There are no wall
// kicks: a blocked rotation leaves the piece unchanged.
func (s *Session) RotateCW() bool {
	return s.rotate(Clockwise)
}

// RotateCCW turns the falling piece a quarter counter-clockwise.
func (s *Session) RotateCCW() bool {
	return s.rotate(CounterClockwise)
}

func (s *Session) rotate(d Direction) bool {
	if s.state != StateFalling {
		return false
	}
	return s.try(s.active.Rotate(d))
}

// try commits candidate as the falling piece if it is a valid placement.
func (s *Session) try(candidate Piece) bool {
	if !s.board.IsValidPlacement(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// SoftDrop moves the falling piece one row down and scores it. When the
// piece cannot move down it locks instead and SoftDrop returns false.
func (s *Session) SoftDrop() bool {
	if s.state != StateFalling {
		return false
	}
	if !s.fall() {
		return false
	}
	s.score += s.policy.SoftDrop(s.level)
	s.stats.SoftDropRows++
	return true
}

// Tick applies one step of gravity: the piece moves down one row or, if it
// is resting, locks. It reports whether the piece moved.
func (s *Session) Tick() bool {
	if s.state != StateFalling {
		return false
	}
	return s.fall()
}

// fall moves the piece down one row. A down move that leaves the piece's
// cells where they were means it is resting, and it locks.
func (s *Session) fall() bool {
	before := s.active
	s.try(s.active.Translate(1, 0))
	if s.active.SameCells(before) {
		s.lock()
		return false
	}
	return true
}

// HardDrop drops the falling piece to its ghost position and locks it.
func (s *Session) HardDrop() bool {
	if s.state != StateFalling {
		return false
	}
	ghost := s.board.Rest(s.active)
	rows := ghost.Row - s.active.Row
	s.score += s.policy.HardDrop(s.level, rows)
	s.stats.HardDrops++
	s.stats.HardDropRows += rows
	s.active = ghost
	s.lock()
	return true
}

// Hold swaps the falling piece into the hold slot. With an empty slot the
// next queued piece comes into play; otherwise the held variant returns in
// its spawn orientation. Hold is accepted once per piece: it is refused
// again until the next lock. It is also refused, without side effects, if
// the incoming piece cannot be placed.
func (s *Session) Hold() bool {
	if !s.CanHold() {
		return false
	}

	var incoming Piece
	if s.hasHeld {
		incoming = Spawn(s.held, s.board.Width())
	} else {
		next := s.rand.Peek(1)
		if len(next) == 0 {
			return false
		}
		incoming = Spawn(next[0], s.board.Width())
	}
	if !s.board.IsValidPlacement(incoming) {
		return false
	}
	if !s.hasHeld {
		s.rand.Next()
		s.stats.Spawned[incoming.Variant]++
	}

	s.held, s.hasHeld = s.active.Variant, true
	s.active = incoming
	s.canHold = false
	s.stats.Holds++

	s.logger.Debug("hold", "held", s.held, "active", incoming.Variant)
	s.observer.OnHold(s.held)
	s.observer.OnSpawn(incoming)
	return true
}

// Quit ends a live session. It reports whether the session was live.
func (s *Session) Quit() bool {
	if s.state == StateGameOver {
		return false
	}
	s.quit = true
	s.end()
	return true
}

// Apply performs the operation named by intent and reports whether it
// changed anything.
func (s *Session) Apply(intent Intent) bool {
	switch intent {
	case IntentMoveLeft:
		return s.MoveLeft()
	case IntentMoveRight:
		return s.MoveRight()
	case IntentSoftDrop:
		return s.SoftDrop()
	case IntentRotateCW:
		return s.RotateCW()
	case IntentRotateCCW:
		return s.RotateCCW()
	case IntentHardDrop:
		return s.HardDrop()
	case IntentHold:
		return s.Hold()
	case IntentQuit:
		return s.Quit()
	default:
		return false
	}
}

// Advance feeds dt of elapsed time to gravity and returns the number of
// gravity steps it triggered. The drop interval is re-read after every
// step so a level change takes effect at once.
func (s *Session) Advance(dt time.Duration) int {
	if s.state != StateFalling || dt <= 0 {
		return 0
	}
	s.gravity += dt
	ticks := 0
	for s.state == StateFalling {
		interval := s.DropInterval()
		if s.gravity < interval {
			break
		}
		s.gravity -= interval
		s.fall()
		ticks++
	}
	return ticks
}

// lock runs the lock/clear/spawn cycle for the falling piece.
func (s *Session) lock() {
	s.setState(StateLocking)
	s.board.Lock(s.active)
	s.stats.Locked++
	s.gravity = 0
	s.logger.Debug("lock", "variant", s.active.Variant, "row", s.active.Row, "col", s.active.Col)
	s.observer.OnLock(s.active)

	s.setState(StateClearing)
	if rows := s.board.FullRows(); len(rows) > 0 {
		s.board.ClearRows(rows)
		n := len(rows)
		s.score += s.policy.LineClear(s.level, n)
		s.lines += n
		s.level = s.policy.Level(s.lines)
		s.stats.recordClear(n)
		s.logger.Debug("clear", "rows", rows, "lines", s.lines, "level", s.level, "score", s.score)
		s.observer.OnLinesCleared(rows)
	}

	s.setState(StateSpawning)
	s.spawnNext()
}

// spawnNext deals the next piece. A spawn position that is already
// blocked ends the session.
func (s *Session) spawnNext() {
	p := Spawn(s.rand.Next(), s.board.Width())
	s.stats.Spawned[p.Variant]++
	s.active = p
	if !s.board.IsValidPlacement(p) {
		s.logger.Debug("spawn blocked", "variant", p.Variant)
		s.end()
		return
	}
	s.canHold = true
	s.logger.Debug("spawn", "variant", p.Variant)
	s.observer.OnSpawn(p)
	s.setState(StateFalling)
}

func (s *Session) end() {
	s.setState(StateGameOver)
	s.logger.Debug("game over", "score", s.score, "lines", s.lines, "level", s.level, "quit", s.quit)
	s.observer.OnGameOver(s.stats)
}

func (s *Session) setState(to State) {
	if s.state == to {
		return
	}
	from := s.state
	s.state = to
	s.observer.OnStateChange(from, to)
}
