// internal/system/score_flash.go
package system

import (
	"fmt"

	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/internal/event"
)

// ScoreFlashSystem создаёт всплывающие вспышки очков по событиям
// TileScored и продвигает их твины до завершения.
type ScoreFlashSystem struct {
	ecs *entity.ECS
}

func NewScoreFlashSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ScoreFlashSystem {
	s := &ScoreFlashSystem{ecs: ecs}
	dispatcher.Subscribe(event.TileScored, s)
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *ScoreFlashSystem) OnEvent(e event.Event) {
	payload, ok := e.Data.(event.ScorePayload)
	if !ok {
		return
	}

	text := fmt.Sprintf("+%d", payload.Delta)
	col := config.FlashGoodColor
	if !payload.Good {
		col = config.FlashBadColor
		if payload.Delta == 0 {
			text = "MISS"
		}
	}

	x := config.SphereCenterX + payload.LaneX*config.LaneScale
	y := config.SphereCenterY - config.RenderRadius
	id := s.ecs.NewEntity()
	s.ecs.ScoreFlashes[id] = component.NewScoreFlash(text, x, y, col)
}

// Update продвигает все вспышки и удаляет завершённые.
func (s *ScoreFlashSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.ScoreFlashes {
		flash.Advance(deltaTime)
		if flash.Done {
			delete(s.ecs.ScoreFlashes, id)
		}
	}
}
