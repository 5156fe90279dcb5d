// internal/ui/score_panel.go
package ui

import (
	"fmt"

	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScorePanel выводит счёт и рекорд в левом верхнем углу.
type ScorePanel struct {
	X, Y int
	Face font.Face
}

func NewScorePanel(face font.Face) *ScorePanel {
	return &ScorePanel{X: 20, Y: 32, Face: face}
}

func (p *ScorePanel) Draw(screen *ebiten.Image, score, highScore int) {
	text.Draw(screen, fmt.Sprintf("Score: %d", score), p.Face, p.X, p.Y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Best: %d", highScore), p.Face, p.X, p.Y+24, config.TextLightColor)
}
