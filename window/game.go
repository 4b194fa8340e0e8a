// Package window is the desktop front end, built on ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetrad/loop"
	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

const (
	// CellSize is the logical size of one board cell in pixels.
	CellSize = 24

	repeatDelay    = 10
	repeatInterval = 3

	demoStep = 80 * time.Millisecond
)

var background = color.RGBA{R: 18, G: 22, B: 24, A: 0xff}

// binding maps a key to an intent. Repeating bindings fire again while the
// key is held.
type binding struct {
	key    ebiten.Key
	intent tetris.Intent
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyLeft, tetris.IntentMoveLeft, true},
	{ebiten.KeyJ, tetris.IntentMoveLeft, true},
	{ebiten.KeyRight, tetris.IntentMoveRight, true},
	{ebiten.KeyK, tetris.IntentMoveRight, true},
	{ebiten.KeyDown, tetris.IntentSoftDrop, true},
	{ebiten.KeyG, tetris.IntentSoftDrop, true},
	{ebiten.KeyUp, tetris.IntentRotateCW, false},
	{ebiten.KeyF, tetris.IntentRotateCW, false},
	{ebiten.KeyZ, tetris.IntentRotateCCW, false},
	{ebiten.KeyD, tetris.IntentRotateCCW, false},
	{ebiten.KeySpace, tetris.IntentHardDrop, false},
	{ebiten.KeyC, tetris.IntentHold, false},
	{ebiten.KeyQ, tetris.IntentQuit, false},
	{ebiten.KeyEscape, tetris.IntentQuit, false},
}

// Overlay draws on top of the game, for example a debug inspector.
type Overlay interface {
	Update(snap tetris.Snapshot, stats *loop.SchedulerStats, dt time.Duration)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game for one session. Each ebiten update runs one
// scheduler frame: keyboard, autoplay, apply, gravity, snapshot and then
// the overlay.
type Game struct {
	session *tetris.Session
	sched   *loop.Scheduler
	snap    *loop.SnapshotSystem
	geom    Geometry
	player  *autoplay.Player
	overlay Overlay
	logger  *log.Logger
	ctx     context.Context

	exit bool
}

// Option customizes a Game.
type Option func(*Game)

// WithDemo lets p play instead of the keyboard.
func WithDemo(p *autoplay.Player) Option {
	return func(g *Game) {
		g.player = p
	}
}

// WithOverlay draws o over the game every frame.
func WithOverlay(o Overlay) Option {
	return func(g *Game) {
		g.overlay = o
	}
}

// WithContext stops the game when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(g *Game) {
		g.ctx = ctx
	}
}

// WithLogger sets the logger for input tracing.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame creates a game that drives s.
func NewGame(s *tetris.Session, opts ...Option) *Game {
	b := s.Board()
	g := &Game{
		session: s,
		sched:   loop.NewScheduler(s),
		snap:    &loop.SnapshotSystem{Last: s.Snapshot()},
		geom:    NewGeometry(b.Width(), b.Height(), CellSize),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.ctx == nil {
		g.ctx = context.Background()
	}

	g.sched.Register(&keyboardSystem{game: g})
	if g.player != nil {
		g.sched.Register(&loop.AutoplaySystem{Player: g.player, Interval: demoStep})
	}
	g.sched.Register(&loop.ApplySystem{})
	g.sched.Register(&loop.GravitySystem{})
	g.sched.Register(g.snap)
	if g.overlay != nil {
		g.sched.Register(&overlaySystem{game: g})
	}
	return g
}

// Scheduler returns the scheduler that runs the game's frames.
func (g *Game) Scheduler() *loop.Scheduler {
	return g.sched
}

// Size returns the logical screen size.
func (g *Game) Size() (width, height int) {
	return g.geom.Size()
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}

	g.sched.Once(time.Second / time.Duration(tps))
	if g.session.Quitted() || g.exit {
		return ebiten.Termination
	}
	return nil
}

// keyboardSystem turns key presses into intents. P toggles pause.
type keyboardSystem struct {
	game *Game
}

func (k *keyboardSystem) Execute(f *loop.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !f.Session.Over() {
		f.Paused = !f.Paused
	}
	for _, b := range bindings {
		fire := inpututil.IsKeyJustPressed(b.key)
		if b.repeat {
			fire = repeats(inpututil.KeyPressDuration(b.key), repeatDelay, repeatInterval)
		}
		if !fire {
			continue
		}
		if b.intent == tetris.IntentQuit {
			if f.Session.Over() {
				k.game.exit = true
			} else {
				f.Commands.Push(tetris.IntentQuit)
			}
			f.Commands.Defer(func(s *tetris.Session) {
				k.game.logger.Info("quit", "score", s.Score())
			})
			continue
		}
		if f.Paused || k.game.player != nil {
			continue
		}
		k.game.logger.Debug("key", "key", b.key, "intent", b.intent)
		f.Commands.Push(b.intent)
	}
}

// overlaySystem hands the frame's snapshot and the scheduler stats to the
// overlay. It runs after the snapshot system.
type overlaySystem struct {
	game *Game
}

func (o *overlaySystem) Execute(f *loop.Frame) {
	o.game.overlay.Update(o.game.snap.Last, o.game.sched.Stats(), f.DeltaTime)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawBoard(screen)
	g.drawPanel(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	size := float32(g.geom.Cell)
	for row, cells := range g.snap.Last.Rows() {
		for col, c := range cells {
			x, y := g.geom.CellOrigin(row, col)
			clr := rgba(c.Color)
			switch c.Glyph {
			case tetris.GlyphGhost:
				vector.DrawFilledRect(screen, x, y, size, size, rgba(tetris.EmptyColor), false)
				vector.StrokeRect(screen, x+2, y+2, size-4, size-4, 2, clr, false)
			default:
				vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
			}
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	x, y := g.geom.PanelOrigin()
	snap := g.snap.Last

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d\nLINES %d\nLEVEL %d", snap.Score, snap.Lines, snap.Level), x, y)
	y += 4 * 16

	ebitenutil.DebugPrintAt(screen, "HOLD", x, y)
	if snap.HasHeld {
		g.drawMini(screen, snap.Held, x, y+16, snap.CanHold)
	}
	y += 4 * 16

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	for i, v := range snap.Preview {
		g.drawMini(screen, v, x, y+16+i*3*g.geom.Cell/2, true)
	}

	status := ""
	switch {
	case snap.State == tetris.StateGameOver:
		status = "GAME OVER\nESC to exit"
	case g.sched.Paused():
		status = "PAUSED"
	case g.player != nil:
		status = "DEMO"
	}
	if status != "" {
		_, h := g.geom.Size()
		ebitenutil.DebugPrintAt(screen, status, x, h-3*16)
	}
}

// drawMini paints v in its spawn orientation at half cell size.
func (g *Game) drawMini(screen *ebiten.Image, v tetris.Variant, x, y int, bright bool) {
	size := float32(g.geom.Cell / 2)
	clr := rgba(v.Color())
	if !bright {
		clr = rgba(tetris.EmptyColor)
	}
	for _, p := range tetris.Offsets(v, tetris.RotationSpawn) {
		row := p.Row
		if v == tetris.I {
			row--
		}
		px := float32(x) + float32(p.Col)*size
		py := float32(y) + float32(row)*size
		vector.DrawFilledRect(screen, px, py, size-1, size-1, clr, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.geom.Size()
	if g.overlay != nil {
		g.overlay.Layout(w, h)
	}
	return w, h
}

// Run opens a window scaled by scale and plays g until the session is
// quit or the window is closed.
func Run(g *Game, title string, scale int) error {
	w, h := g.Size()
	ebiten.SetWindowSize(w*max(scale, 1), h*max(scale, 1))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
