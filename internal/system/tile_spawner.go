// internal/system/tile_spawner.go
package system

import (
	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/internal/types"
	"go-sphere-rhythm/internal/utils"
)

// TileSpawnerSystem владеет таймингом спавна плиток. Интервал либо
// фиксированный, либо линейно сжимается от стартового к минимальному за
// время рампы. Угол спавна продвигается на angularVelocity × интервал,
// поэтому плитки равномерно распределены по повороту независимо от
// длительности кадров.
type TileSpawnerSystem struct {
	ecs  *entity.ECS
	rng  *utils.PRNGService
	diff defs.DifficultyDefinition

	spawnAngle  float64
	accumulated float64
	gameTime    float64
}

func NewTileSpawnerSystem(ecs *entity.ECS, rng *utils.PRNGService, diff defs.DifficultyDefinition) *TileSpawnerSystem {
	// Некорректный интервал превратился бы в бесконечный спавн за кадр,
	// поэтому это фатальная ошибка конфигурации, а не ошибка рантайма.
	if diff.StartInterval <= 0 || diff.MinInterval <= 0 {
		panic("tile spawner: spawn interval must be positive")
	}
	if diff.MinInterval > diff.StartInterval {
		panic("tile spawner: min interval exceeds start interval")
	}
	return &TileSpawnerSystem{
		ecs:  ecs,
		rng:  rng,
		diff: diff,
	}
}

// CurrentInterval возвращает действующий интервал спавна для текущего
// игрового времени. Прогресс рампы зажат в [0, 1].
func (s *TileSpawnerSystem) CurrentInterval() float64 {
	if s.diff.RampDuration <= 0 {
		return s.diff.StartInterval
	}
	progress := utils.Clamp(s.gameTime/s.diff.RampDuration, 0, 1)
	return utils.Lerp(s.diff.StartInterval, s.diff.MinInterval, progress)
}

// Update накапливает deltaTime и, когда набирается текущий интервал,
// создаёт плитку на случайной дорожке. Остаток аккумулятора переносится
// на следующий кадр, поэтому число спавнов зависит только от суммарного
// прошедшего времени. Возвращает ID созданной плитки или 0.
func (s *TileSpawnerSystem) Update(deltaTime float64) types.EntityID {
	s.gameTime += deltaTime
	s.accumulated += deltaTime

	interval := s.CurrentInterval()
	if s.accumulated < interval {
		return 0
	}
	s.accumulated -= interval

	lane := s.rng.Intn(config.LaneCount)
	widthClass := s.rng.ChooseWeightedIndex(s.classWeights())
	depth := s.rng.FloatRange(config.TileDepthMin, config.TileDepthMax)

	tile := component.NewTile(lane, widthClass, depth, s.spawnAngle)
	id := s.ecs.NewEntity()
	s.ecs.Tiles[id] = tile

	s.spawnAngle += config.AngularVelocity * interval
	return id
}

func (s *TileSpawnerSystem) classWeights() []int {
	weights := make([]int, len(defs.WidthClassLibrary))
	for i, c := range defs.WidthClassLibrary {
		weights[i] = c.Weight
	}
	return weights
}

// Reset обнуляет аккумуляторы и угол спавна.
func (s *TileSpawnerSystem) Reset() {
	s.spawnAngle = 0
	s.accumulated = 0
	s.gameTime = 0
}

// SyncToRotation привязывает угол спавна к текущей ротации. Вызывается
// при старте геймплея после меню, чтобы первая плитка не оказалась
// мгновенно просроченной.
func (s *TileSpawnerSystem) SyncToRotation(angle float64) {
	s.spawnAngle = angle
	s.accumulated = 0
}

// ShiftSpawnAngle сдвигает угол спавна на дугу, прокрученную вне
// геймплея (пауза). Накопленный таймер сохраняется, поэтому фаза
// интервала не теряется.
func (s *TileSpawnerSystem) ShiftSpawnAngle(arc float64) {
	s.spawnAngle += arc
}

// SpawnAngle возвращает угол, на котором появится следующая плитка.
func (s *TileSpawnerSystem) SpawnAngle() float64 {
	return s.spawnAngle
}
