// internal/ui/width_selector.go
package ui

import (
	"image/color"
	"time"

	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WidthSelector — ряд кнопок выбора класса ширины внизу экрана.
type WidthSelector struct {
	Y             float32
	Radius        float32
	Face          font.Face
	LastClickTime time.Time
}

func NewWidthSelector(face font.Face) *WidthSelector {
	return &WidthSelector{
		Y:      float32(config.SelectorButtonY),
		Radius: float32(config.SelectorButtonR),
		Face:   face,
	}
}

// buttonX возвращает X центра кнопки с индексом i при текущем числе
// классов ширины.
func (w *WidthSelector) buttonX(i int) float32 {
	n := len(defs.WidthClassLibrary)
	spacing := w.Radius*2 + 16
	start := float32(config.ScreenWidth)/2 - spacing*float32(n-1)/2
	return start + spacing*float32(i)
}

// HitButton возвращает индекс кнопки под точкой (mx, my) или -1.
// Клики дребезжат, поэтому срабатывание ограничено кулдауном.
func (w *WidthSelector) HitButton(mx, my float32) int {
	if time.Since(w.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return -1
	}
	for i := range defs.WidthClassLibrary {
		cx := w.buttonX(i)
		dx := mx - cx
		dy := my - w.Y
		if dx*dx+dy*dy <= w.Radius*w.Radius {
			w.LastClickTime = time.Now()
			return i
		}
	}
	return -1
}

func (w *WidthSelector) Draw(screen *ebiten.Image, selected int) {
	for i, def := range defs.WidthClassLibrary {
		cx := w.buttonX(i)
		col := color.RGBA{def.Color.R, def.Color.G, def.Color.B, 255}
		vector.DrawFilledCircle(screen, cx, w.Y, w.Radius, col, true)
		if i == selected {
			vector.StrokeCircle(screen, cx, w.Y, w.Radius+4, 2, config.TextLightColor, true)
		}
		text.Draw(screen, def.Label, w.Face, int(cx)-6, int(w.Y)+6, config.TextLightColor)
	}
}
