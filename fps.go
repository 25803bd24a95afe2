package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefreshInterval is how often the FPS element refreshes its text, in
// seconds.
const fpsRefreshInterval = 0.5

// NewFPSElement creates an element that displays the current FPS and TPS
// with the renderer's debug text. Add it last to the root so it draws on top.
func NewFPSElement() *Element {
	e := NewElement("fps")
	e.SetSize(100, 32)

	var elapsed float64
	var text string

	e.OnUpdate = func(e *Element, dt float64) {
		elapsed += dt
		if text != "" && elapsed < fpsRefreshInterval {
			return
		}
		elapsed = 0
		text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	e.OnDraw = func(e *Element, r Renderer) {
		r.FillRect(Rect{Width: e.Size().X, Height: e.Size().Y}, Color{A: 0.5})
		r.DebugText(text)
	}
	return e
}
