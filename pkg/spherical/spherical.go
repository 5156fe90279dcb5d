// pkg/spherical/spherical.go
package spherical

import "math"

// Vec3 — точка в мировых координатах. Ось X идёт поперёк дорожек,
// Y вверх, Z вдоль направления движения (камера смотрит вдоль -Z).
type Vec3 struct {
	X, Y, Z float64
}

// Placement описывает позицию на поверхности сферы и ориентацию,
// касательную к ней: поворот вокруг оси дорожки (X) на угол Tilt.
type Placement struct {
	Position Vec3
	Tilt     float64
}

// EffectiveRadius возвращает радиус окружности, по которой движется точка
// со смещением x от оси вращения, приподнятая над поверхностью на height.
func EffectiveRadius(sphereRadius, x, height float64) float64 {
	return math.Sqrt(sphereRadius*sphereRadius-x*x) + height
}

// Place переводит пару (смещение дорожки, угловая позиция) в точку на сфере.
// Одна и та же функция используется для плиток, следов и целевой зоны:
// вся геометрия столкновений ниже по конвейеру рассчитывает, что сущности
// лежат в одном локальном фрейме после привязки к вращающейся сфере.
func Place(laneX, theta, sphereRadius, height float64) Placement {
	eff := EffectiveRadius(sphereRadius, laneX, height)
	return Placement{
		Position: Vec3{
			X: laneX,
			Y: eff * math.Sin(theta),
			Z: eff * math.Cos(theta),
		},
		Tilt: -theta,
	}
}

// ArcAngle возвращает угол, который дуга длиной length занимает на
// окружности радиуса radius.
func ArcAngle(length, radius float64) float64 {
	return length / radius
}

// ArcLength — обратное к ArcAngle преобразование.
func ArcLength(angle, radius float64) float64 {
	return angle * radius
}
