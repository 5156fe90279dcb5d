// internal/ui/lives_indicator.go
package ui

import (
	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator рисует оставшиеся жизни кружками в правом верхнем углу.
type LivesIndicator struct {
	X, Y    float32
	Radius  float32
	Spacing float32
}

func NewLivesIndicator() *LivesIndicator {
	return &LivesIndicator{
		X:       float32(config.ScreenWidth - 120),
		Y:       28,
		Radius:  float32(config.IndicatorRadius),
		Spacing: 28,
	}
}

func (l *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	if maxLives <= 0 {
		return // бесконечный режим — индикатор не нужен
	}
	for i := 0; i < maxLives; i++ {
		col := config.LifeLostColor
		if i < lives {
			col = config.LifeColor
		}
		cx := l.X + float32(i)*l.Spacing
		vector.DrawFilledCircle(screen, cx, l.Y, l.Radius, col, true)
	}
}
