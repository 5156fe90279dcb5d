// internal/component/score_flash.go
package component

import (
	"image/color"

	"go-sphere-rhythm/internal/config"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScoreFlash — всплывающий текст начисленных очков. Поднимается и гаснет
// за фиксированную длительность, после чего удаляется.
type ScoreFlash struct {
	Text string
	X, Y float64 // экранные координаты точки появления
	Col  color.RGBA

	alpha *gween.Tween
	rise  *gween.Tween

	Alpha  float32 // текущая прозрачность [0,1]
	Offset float32 // текущий подъём в пикселях
	Done   bool
}

// NewScoreFlash создаёт вспышку очков в экранной точке (x, y).
func NewScoreFlash(text string, x, y float64, col color.RGBA) *ScoreFlash {
	return &ScoreFlash{
		Text:  text,
		X:     x,
		Y:     y,
		Col:   col,
		Alpha: 1,
		alpha: gween.New(1, 0, config.ScoreFlashDuration, ease.OutQuad),
		rise:  gween.New(0, config.ScoreFlashRise, config.ScoreFlashDuration, ease.OutCubic),
	}
}

// Advance продвигает твины вспышки. После завершения Done остаётся true.
func (f *ScoreFlash) Advance(deltaTime float64) {
	if f.Done {
		return
	}
	dt := float32(deltaTime)
	f.Offset, _ = f.rise.Update(dt)
	alpha, done := f.alpha.Update(dt)
	f.Alpha = alpha
	if done {
		f.Done = true
	}
}
