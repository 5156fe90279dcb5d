// internal/component/trail.go
package component

import (
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
)

// Trail — короткоживущий сегмент следа, нарисованный под целевой зоной,
// пока игрок удерживает ввод. Сегмент приклеен к сфере: его угол в
// системе сферы фиксируется в момент спавна.
type Trail struct {
	X          float64
	WidthClass int
	Width      float64
	SpawnAngle float64 // ротация в момент спавна
	Angle      float64 // TargetTheta + SpawnAngle, система сферы
	Age        float64

	// Highlighted выставляется при первом перекрытии с плиткой; после
	// этого сегмент больше не участвует в проверках (write-once).
	Highlighted bool

	disposed bool
}

// NewTrail создаёт сегмент следа в позиции x с углом спавна spawnAngle.
func NewTrail(x float64, widthClass int, spawnAngle float64) *Trail {
	return &Trail{
		X:          x,
		WidthClass: widthClass,
		Width:      defs.WidthClassLibrary[widthClass].Width,
		SpawnAngle: spawnAngle,
		Angle:      config.TargetTheta + spawnAngle,
	}
}

// UpdateAge наращивает возраст сегмента.
func (tr *Trail) UpdateAge(deltaTime float64) {
	tr.Age += deltaTime
}

// WorldTheta возвращает мировой угол сегмента при данной ротации.
func (tr *Trail) WorldTheta(rotation float64) float64 {
	return tr.Angle - rotation
}

// TrackPos — позиция сегмента вдоль оси движения в общем фрейме
// (та же дуга на голом радиусе, что у плиток).
func (tr *Trail) TrackPos() float64 {
	return tr.Angle * config.SphereRadius
}

// XBounds возвращает левую и правую границы сегмента.
func (tr *Trail) XBounds() (left, right float64) {
	half := tr.Width / 2
	return tr.X - half, tr.X + half
}

// Dispose помечает сегмент освобождённым. Повторные вызовы безопасны.
func (tr *Trail) Dispose() {
	tr.disposed = true
}

// Disposed сообщает, освобождён ли сегмент.
func (tr *Trail) Disposed() bool {
	return tr.disposed
}
