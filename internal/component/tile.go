// internal/component/tile.go
package component

import (
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tile — одна засчитываемая плитка на сфере.
//
// Угол Angle — центр плитки в системе координат сферы (нарисован "на"
// вращающейся сфере и не меняется). Мировой угол получается вычитанием
// текущей ротации: плитка появляется на LeadAngle впереди линии
// засчитывания и едет к ней по мере вращения.
type Tile struct {
	Lane       int
	WidthClass int
	LaneX      float64
	Width      float64
	Depth      float64 // равномерно из [TileDepthMin, TileDepthMax)
	SpawnAngle float64 // значение ротации в момент спавна
	Angle      float64 // SpawnAngle + LeadAngle, система сферы
	Age        float64

	CoverageArea    float64
	TotalArea       float64
	CoveragePercent float64 // фиксируется при пересечении линии

	Passed     bool
	Scored     bool
	Collidable bool

	// Hold-to-hit состояние.
	HitProgress float64
	Hitting     bool

	// Sprite — графический ресурс, которым плитка владеет эксклюзивно.
	Sprite *ebiten.Image

	disposed bool
}

// NewTile создаёт плитку для дорожки lane и класса ширины widthClass.
func NewTile(lane, widthClass int, depth, spawnAngle float64) *Tile {
	width := defs.WidthClassLibrary[widthClass].Width
	return &Tile{
		Lane:       lane,
		WidthClass: widthClass,
		LaneX:      config.LaneOffsets[lane],
		Width:      width,
		Depth:      depth,
		SpawnAngle: spawnAngle,
		Angle:      spawnAngle + config.LeadAngle,
		TotalArea:  width * depth,
		Collidable: true,
	}
}

// UpdateAge наращивает возраст плитки.
func (t *Tile) UpdateAge(deltaTime float64) {
	t.Age += deltaTime
}

// WorldTheta возвращает мировой угол центра плитки при данной ротации.
func (t *Tile) WorldTheta(rotation float64) float64 {
	return t.Angle - rotation
}

// TrackCenter — позиция центра вдоль оси движения в общем фрейме
// (дуга на голом радиусе сферы; следы используют тот же фрейм).
func (t *Tile) TrackCenter() float64 {
	return t.Angle * config.SphereRadius
}

// TrackBounds возвращает переднюю (ведущую) и заднюю кромку вдоль оси
// движения. Передняя кромка пересекает линию засчитывания первой.
func (t *Tile) TrackBounds() (front, back float64) {
	half := t.Depth / 2
	center := t.TrackCenter()
	return center - half, center + half
}

// XBounds возвращает левую и правую границы плитки.
func (t *Tile) XBounds() (left, right float64) {
	half := t.Width / 2
	return t.LaneX - half, t.LaneX + half
}

// AddCoverage добавляет площадь перекрытия к аккумулятору покрытия.
// Вызовы после пересечения линии игнорируются.
func (t *Tile) AddCoverage(overlapWidth, segmentHeight float64) {
	if !t.Collidable {
		return
	}
	t.CoverageArea += overlapWidth * segmentHeight
}

// CheckPassedTarget возвращает true ровно один раз — когда задняя кромка
// плитки пересекает линию засчитывания (z >= 0, т.е. мировой угол задней
// кромки опускается до TargetTheta). В этот момент фиксируется итоговый
// процент покрытия и плитка перестаёт принимать попадания.
func (t *Tile) CheckPassedTarget(rotation float64) bool {
	if t.Passed {
		return false
	}
	backTheta := t.Angle + t.Depth/2/config.SphereRadius - rotation
	if backTheta > config.TargetTheta {
		return false
	}
	percent := 0.0
	if t.TotalArea > 0 {
		percent = 100 * t.CoverageArea / t.TotalArea
	}
	if percent > 100 {
		percent = 100
	}
	t.CoveragePercent = percent
	t.Passed = true
	t.Collidable = false
	t.Hitting = false
	return true
}

// StartHit начинает удержание плитки. Отклоняется, если плитка уже
// засчитана или прошла линию.
func (t *Tile) StartHit() bool {
	if !t.Collidable {
		return false
	}
	t.Hitting = true
	return true
}

// UpdateHit наращивает прогресс удержания. Прогресс доходит до 1 ровно
// тогда, когда вся глубина плитки прошла через целевую зону на скорости
// tileSpeed. Возвращает true в кадр завершения.
func (t *Tile) UpdateHit(deltaTime, tileSpeed float64) bool {
	if !t.Hitting || !t.Collidable {
		return false
	}
	t.HitProgress += deltaTime * tileSpeed / t.Depth
	if t.HitProgress < 1 {
		return false
	}
	t.HitProgress = 1
	t.Scored = true
	t.Collidable = false
	t.Hitting = false
	return true
}

// StopHit обрывает удержание. Ранний отпуск "ломает" ноту: прогресс
// откатывается на фиксированный штраф, но не ниже нуля.
func (t *Tile) StopHit() {
	if !t.Hitting {
		return
	}
	t.Hitting = false
	t.HitProgress -= config.HoldReleasePenalty
	if t.HitProgress < 0 {
		t.HitProgress = 0
	}
}

// Dispose освобождает графический ресурс плитки. Повторные вызовы
// безопасны.
func (t *Tile) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.Collidable = false
	if t.Sprite != nil {
		t.Sprite.Deallocate()
		t.Sprite = nil
	}
}

// Disposed сообщает, был ли ресурс плитки уже освобождён.
func (t *Tile) Disposed() bool {
	return t.disposed
}
