// internal/state/play_state.go
package state

import (
	game "go-sphere-rhythm/internal/app"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — активный геймплей. Здесь сырые события ebiten переводятся
// в вызовы публичного API игры: курсор двигает целевую зону, нажатие и
// отпускание кнопки — это начало и конец удержания, клавиши и кнопки
// внизу выбирают класс ширины.
type PlayState struct {
	sm          *StateMachine
	game        *game.Game
	scorePanel  *ui.ScorePanel
	lives       *ui.LivesIndicator
	selector    *ui.WidthSelector
	pauseButton *ui.PauseButton
}

var widthKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

func NewPlayState(sm *StateMachine, g *game.Game) *PlayState {
	return &PlayState{
		sm:          sm,
		game:        g,
		scorePanel:  ui.NewScorePanel(g.FontFace),
		lives:       ui.NewLivesIndicator(),
		selector:    ui.NewWidthSelector(g.FontFace),
		pauseButton: ui.NewPauseButton(),
	}
}

func (p *PlayState) Enter() {
	p.game.SetGameOverFunc(func(finalScore int) {
		p.sm.SetState(NewGameOverState(p.sm, p.game))
	})
	p.pauseButton.SetPaused(false)
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.pause()
		return
	}

	for i, key := range widthKeys {
		if inpututil.IsKeyJustPressed(key) {
			p.game.SetTargetWidthIndex(i)
		}
	}

	mx, my := ebiten.CursorPosition()
	p.game.MoveTargetZone((float64(mx) - config.SphereCenterX) / config.LaneScale)

	p.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		fmx, fmy := float32(mx), float32(my)
		if p.pauseButton.IsInside(fmx, fmy) {
			p.pause()
			return
		}
		if i := p.selector.HitButton(fmx, fmy); i >= 0 {
			p.game.SetTargetWidthIndex(i)
		} else {
			p.game.OnHitStart()
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.game.OnHitEnd()
	}

	// Пробел дублирует удержание для игры без мыши.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.game.OnHitStart()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		p.game.OnHitEnd()
	}
}

func (p *PlayState) pause() {
	p.game.SetPaused(true)
	p.pauseButton.SetPaused(true)
	p.sm.SetState(NewPauseState(p.sm, p, p.game))
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.game.Draw(screen)
	p.scorePanel.Draw(screen, p.game.Score(), p.game.HighScore())
	p.lives.Draw(screen, p.game.Lives(), p.game.MaxLives())
	p.selector.Draw(screen, p.game.TargetWidthIndex())
	p.pauseButton.Draw(screen)
}

func (p *PlayState) Exit() {}
