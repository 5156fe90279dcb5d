// internal/system/trail_spawner.go
package system

import (
	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/pkg/spherical"
)

// TrailSpawnerSystem испускает сегменты следа с фиксированной угловой
// каденцией, пока удерживается ввод. За кадр создаётся ровно
// floor(Δ/spacing) равномерно расставленных сегментов, а несъеденный
// остаток угла переносится в следующий кадр: покрытие получается без
// разрывов и не зависит от частоты кадров.
//
// Шаг равен точно высоте сегмента (без перекрытия), чтобы перекрывающиеся
// сегменты не могли дважды засчитать одну и ту же площадь покрытия.
type TrailSpawnerSystem struct {
	ecs     *entity.ECS
	spacing float64 // угловой шаг между сегментами

	active      bool
	originAngle float64
	x           float64
	widthClass  int
}

func NewTrailSpawnerSystem(ecs *entity.ECS) *TrailSpawnerSystem {
	eff := spherical.EffectiveRadius(config.SphereRadius, 0, config.TrailHeightOffset)
	spacing := spherical.ArcAngle(config.TrailHeight, eff)
	// Нулевой или отрицательный шаг означал бы бесконечный спавн за кадр.
	if spacing <= 0 {
		panic("trail spawner: spacing must be positive")
	}
	return &TrailSpawnerSystem{
		ecs:     ecs,
		spacing: spacing,
	}
}

// StartSpawning фиксирует точку отсчёта каденции в текущей ротации.
func (s *TrailSpawnerSystem) StartSpawning(x float64, widthClass int, currentAngle float64) {
	s.active = true
	s.originAngle = currentAngle
	s.x = x
	s.widthClass = widthClass
}

// UpdateSpawnPosition двигает точку спавна за мышью, не сбивая каденцию.
func (s *TrailSpawnerSystem) UpdateSpawnPosition(x float64) {
	s.x = x
}

// SpawnTrails создаёт все сегменты, поместившиеся в угловую дельту с
// прошлого вызова, и продвигает точку отсчёта ровно на потраченный угол.
// Возвращает число созданных сегментов.
func (s *TrailSpawnerSystem) SpawnTrails(currentAngle float64) int {
	if !s.active {
		return 0
	}
	delta := currentAngle - s.originAngle
	if delta < s.spacing {
		return 0
	}
	count := int(delta / s.spacing)
	for i := 1; i <= count; i++ {
		angle := s.originAngle + float64(i)*s.spacing
		id := s.ecs.NewEntity()
		s.ecs.Trails[id] = component.NewTrail(s.x, s.widthClass, angle)
	}
	s.originAngle += float64(count) * s.spacing
	return count
}

// StopSpawning останавливает эмиссию; уже созданные сегменты доживают
// свой бюджет самостоятельно.
func (s *TrailSpawnerSystem) StopSpawning() {
	s.active = false
}

// Active сообщает, идёт ли эмиссия.
func (s *TrailSpawnerSystem) Active() bool {
	return s.active
}

// Spacing возвращает угловой шаг каденции.
func (s *TrailSpawnerSystem) Spacing() float64 {
	return s.spacing
}
