// internal/system/coverage.go
package system

import (
	"math"

	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/internal/types"
)

// CoverageSystem старит сегменты следа, проверяет их перекрытие с
// плитками и утилизирует сегменты, вышедшие за бюджет поворота.
type CoverageSystem struct {
	ecs *entity.ECS
}

func NewCoverageSystem(ecs *entity.ECS) *CoverageSystem {
	return &CoverageSystem{ecs: ecs}
}

// Update обрабатывает все следы в порядке появления. Плитка, созданная
// раньше в этом же кадре, уже лежит в ECS и сразу доступна для
// перекрытия — визуального лага в один кадр нет.
func (s *CoverageSystem) Update(deltaTime, rotation float64) {
	tileIDs := s.ecs.SortedTileIDs()

	for _, id := range s.ecs.SortedTrailIDs() {
		tr := s.ecs.Trails[id]
		tr.UpdateAge(deltaTime)

		if rotation-tr.SpawnAngle >= config.TrailLifespanAngle {
			tr.Dispose()
			delete(s.ecs.Trails, id)
			continue
		}
		if tr.Highlighted {
			// Сегмент уже внёс покрытие ровно в одну плитку.
			continue
		}
		s.evaluate(tr, tileIDs)
	}
}

// evaluate ищет первую подходящую плитку и отдаёт ей площадь перекрытия.
// Передаётся настоящая геометрическая ширина пересечения, а не полная
// ширина сегмента.
func (s *CoverageSystem) evaluate(tr *component.Trail, tileIDs []types.EntityID) {
	pos := tr.TrackPos()
	trLeft, trRight := tr.XBounds()

	for _, tid := range tileIDs {
		t := s.ecs.Tiles[tid]
		if !t.Collidable || t.WidthClass != tr.WidthClass {
			continue
		}
		front, back := t.TrackBounds()
		if pos < front || pos > back {
			continue
		}
		left, right := t.XBounds()
		overlap := math.Min(trRight, right) - math.Max(trLeft, left)
		if overlap <= 0 {
			continue
		}
		t.AddCoverage(overlap, config.TrailHeight)
		tr.Highlighted = true
		return
	}
}
