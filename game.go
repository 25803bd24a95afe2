package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MousePointerID is the pointer id used for the left mouse button. Touches
// use TouchPointerID.
const MousePointerID = 0

// TouchPointerID maps an ebiten touch to a canvas pointer id.
func TouchPointerID(id ebiten.TouchID) int {
	return int(id) + 1
}

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Debug enables Canvas debug mode.
	Debug bool
	// ShowFPS appends an FPS element to the root.
	ShowFPS bool
	// Script, if set, replays scripted input alongside real input.
	Script *ScriptRunner
}

type activeTouch struct {
	id   ebiten.TouchID
	last Vec2
}

// Game adapts a Canvas to ebiten.Game. Each tick it turns mouse and touch
// state into pointer events, drains them into the canvas and updates it.
type Game struct {
	canvas   *Canvas
	queue    *EventQueue
	renderer *ImageRenderer
	script   *ScriptRunner

	width, height int

	mouseDown bool
	lastMouse Vec2
	touches   []activeTouch
	touchBuf  []ebiten.TouchID
}

// NewGame creates a Game with a fixed logical screen size.
func NewGame(c *Canvas, width, height int) *Game {
	return &Game{
		canvas:   c,
		queue:    NewEventQueue(),
		renderer: NewImageRenderer(nil),
		width:    width,
		height:   height,
	}
}

// Canvas returns the wrapped canvas.
func (g *Game) Canvas() *Canvas {
	return g.canvas
}

// Queue returns the event queue. Other goroutines may post to it.
func (g *Game) Queue() *EventQueue {
	return g.queue
}

// SetScript attaches a ScriptRunner stepped once per tick.
func (g *Game) SetScript(r *ScriptRunner) {
	g.script = r
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.Step(g.queue)
	}
	g.pollMouse()
	g.pollTouches()
	g.queue.Drain(g.canvas)
	g.canvas.Update(1 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.canvas.Draw(g.renderer)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *Game) pollMouse() {
	mx, my := ebiten.CursorPosition()
	p := Vec2{float64(mx), float64(my)}
	switch {
	case !g.mouseDown && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseDown = true
		g.queue.PostPress(MousePointerID, p.X, p.Y)
	case g.mouseDown && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.queue.PostRelease(MousePointerID, p.X, p.Y)
	case g.mouseDown && p != g.lastMouse:
		g.queue.PostMove(MousePointerID, p.X, p.Y)
	}
	g.lastMouse = p
}

func (g *Game) pollTouches() {
	// Released or moved touches, in press order.
	kept := g.touches[:0]
	for _, t := range g.touches {
		if inpututil.IsTouchJustReleased(t.id) {
			g.queue.PostRelease(TouchPointerID(t.id), t.last.X, t.last.Y)
			continue
		}
		x, y := ebiten.TouchPosition(t.id)
		p := Vec2{float64(x), float64(y)}
		if p != t.last {
			g.queue.PostMove(TouchPointerID(t.id), p.X, p.Y)
			t.last = p
		}
		kept = append(kept, t)
	}
	g.touches = kept

	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		p := Vec2{float64(x), float64(y)}
		g.touches = append(g.touches, activeTouch{id: id, last: p})
		g.queue.PostPress(TouchPointerID(id), p.X, p.Y)
	}
}

// Run opens a window and runs c until the window is closed.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run canvas: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	c.SetDebugMode(cfg.Debug)
	if cfg.ShowFPS && c.RootElement() != nil {
		c.RootElement().AddChild(NewFPSElement())
	}

	g := NewGame(c, cfg.Width, cfg.Height)
	g.SetScript(cfg.Script)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run canvas: %w", err)
	}
	return nil
}
