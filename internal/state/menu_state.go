// internal/state/menu_state.go
package state

import (
	"image/color"

	game "go-sphere-rhythm/internal/app"
	"go-sphere-rhythm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// MenuState — стартовое меню: сфера крутится в фоне, подсказка пульсирует.
type MenuState struct {
	sm    *StateMachine
	game  *game.Game
	pulse *gween.Tween
	up    bool
	alpha float32
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	return &MenuState{
		sm:    sm,
		game:  g,
		pulse: gween.New(1, 0.35, 1.2, ease.InOutQuad),
		alpha: 1,
	}
}

func (m *MenuState) Enter() {
	m.game.SetTargetVisible(false)
}

func (m *MenuState) Update(deltaTime float64) {
	// Фоновая ротация: геймплейные шаги внутри пропускаются, пока игра
	// не запущена.
	m.game.Update(deltaTime)

	alpha, done := m.pulse.Update(float32(deltaTime))
	m.alpha = alpha
	if done {
		if m.up {
			m.pulse = gween.New(1, 0.35, 1.2, ease.InOutQuad)
		} else {
			m.pulse = gween.New(0.35, 1, 1.2, ease.InOutQuad)
		}
		m.up = !m.up
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.game.StartGame()
		m.sm.SetState(NewPlayState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.game.Draw(screen)

	face := m.game.FontFace
	drawCenteredText(screen, "SPHERE RHYTHM", face, config.ScreenHeight/3, config.TextLightColor)

	col := config.TextLightColor
	col.A = uint8(255 * m.alpha)
	drawCenteredText(screen, "press SPACE to start", face, config.ScreenHeight/3+40, col)
}

func (m *MenuState) Exit() {
	m.game.SetTargetVisible(true)
}

// drawCenteredText рисует строку, центрированную по горизонтали.
func drawCenteredText(screen *ebiten.Image, s string, face font.Face, y int, col color.Color) {
	bounds := text.BoundString(face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, col)
}
