// internal/ui/pause_button.go
package ui

import (
	"time"

	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы в правом верхнем углу.
type PauseButton struct {
	X, Y           float32
	Size           float32
	Paused         bool
	LastToggleTime time.Time
}

func NewPauseButton() *PauseButton {
	return &PauseButton{
		X:    float32(config.ScreenWidth - config.IndicatorOffsetX),
		Y:    float32(config.IndicatorOffsetX),
		Size: 14,
	}
}

func (b *PauseButton) SetPaused(paused bool) {
	b.Paused = paused
	b.LastToggleTime = time.Now()
}

// IsInside проверяет попадание точки в кнопку с учётом кулдауна клика.
func (b *PauseButton) IsInside(mx, my float32) bool {
	if time.Since(b.LastToggleTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	vector.StrokeCircle(screen, b.X, b.Y, b.Size, 2, config.SphereRimColor, true)
	if b.Paused {
		// Треугольник "play" из трёх линий.
		vector.StrokeLine(screen, b.X-4, b.Y-6, b.X-4, b.Y+6, 2, config.TextLightColor, true)
		vector.StrokeLine(screen, b.X-4, b.Y-6, b.X+6, b.Y, 2, config.TextLightColor, true)
		vector.StrokeLine(screen, b.X-4, b.Y+6, b.X+6, b.Y, 2, config.TextLightColor, true)
		return
	}
	vector.StrokeLine(screen, b.X-3, b.Y-6, b.X-3, b.Y+6, 3, config.TextLightColor, true)
	vector.StrokeLine(screen, b.X+3, b.Y-6, b.X+3, b.Y+6, 3, config.TextLightColor, true)
}
