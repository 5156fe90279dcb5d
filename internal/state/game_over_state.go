// internal/state/game_over_state.go
package state

import (
	"fmt"

	game "go-sphere-rhythm/internal/app"
	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает финальный счёт поверх докручивающейся сферы.
// Сюда машина состояний попадает из колбэка game over.
type GameOverState struct {
	sm         *StateMachine
	game       *game.Game
	finalScore int
}

func NewGameOverState(sm *StateMachine, g *game.Game) *GameOverState {
	return &GameOverState{sm: sm, game: g, finalScore: g.Score()}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// Геймплейные шаги внутри пропускаются, пока выставлен game over.
	s.game.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.game.Restart()
		s.sm.SetState(NewPlayState(s.sm, s.game))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	overlay := config.BackgroundColor
	overlay.A = 180
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlay, false)

	face := s.game.FontFace
	centerY := config.ScreenHeight / 2
	drawCenteredText(screen, "GAME OVER", face, centerY-48, config.LifeColor)
	drawCenteredText(screen, fmt.Sprintf("Score: %d", s.finalScore), face, centerY, config.TextLightColor)
	drawCenteredText(screen, fmt.Sprintf("Best: %d", s.game.HighScore()), face, centerY+28, config.TextLightColor)
	drawCenteredText(screen, "press SPACE to play again", face, centerY+72, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
