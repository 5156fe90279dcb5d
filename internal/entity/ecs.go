// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/types"
)

// ECS хранит все активные сущности по компонентным картам. Карты
// принадлежат Game и мутируются только внутри его Update.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Tiles        map[types.EntityID]*component.Tile
	Trails       map[types.EntityID]*component.Trail
	ScoreFlashes map[types.EntityID]*component.ScoreFlash

	Target *component.TargetZone
	Status *component.GameStatus
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Tiles:        make(map[types.EntityID]*component.Tile),
		Trails:       make(map[types.EntityID]*component.Trail),
		ScoreFlashes: make(map[types.EntityID]*component.ScoreFlash),
		Target:       &component.TargetZone{Visible: true},
		Status: &component.GameStatus{
			Lives: config.StartingLives,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedTileIDs возвращает ID плиток в порядке появления. Обходы в этом
// порядке делают засеянный прогон полностью детерминированным.
func (ecs *ECS) SortedTileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Tiles))
	for id := range ecs.Tiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedTrailIDs возвращает ID следов в порядке появления.
func (ecs *ECS) SortedTrailIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Trails))
	for id := range ecs.Trails {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
