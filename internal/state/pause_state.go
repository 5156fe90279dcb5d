// internal/state/pause_state.go
package state

import (
	game "go-sphere-rhythm/internal/app"
	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState затемняет игровой экран и ждёт снятия паузы. Часы вращения
// продолжают идти, геймплей заморожен.
type PauseState struct {
	sm   *StateMachine
	prev *PlayState
	game *game.Game
}

func NewPauseState(sm *StateMachine, prev *PlayState, g *game.Game) *PauseState {
	return &PauseState{sm: sm, prev: prev, game: g}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	// Ротация продолжается для фоновой анимации.
	s.game.Update(deltaTime)

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if unpause {
		s.game.SetPaused(false)
		s.prev.pauseButton.SetPaused(false)
		s.sm.SetState(s.prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)

	overlay := config.BackgroundColor
	overlay.A = 160
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlay, false)
	drawCenteredText(screen, "PAUSED", s.game.FontFace, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
