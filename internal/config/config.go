// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	MaxDeltaTime      = 0.06
	ClickCooldown     = 300 // ms
	ClickDebounceTime = 100

	// Геометрия сферы и движение. Линейная скорость плитки, делённая на
	// радиус, даёт угловую скорость вращения.
	SphereRadius    = 300.0
	TileSpeed       = 10.0
	AngularVelocity = TileSpeed / SphereRadius

	// Смещения по высоте над поверхностью сферы: плитки чуть выше следов,
	// чтобы след рисовался "под" плиткой.
	TileHeightOffset  = 0.1
	TrailHeightOffset = 0.05

	// LeadAngle — плитка появляется на 120° впереди линии засчитывания.
	LeadAngle = 2 * math.Pi / 3
	// TargetTheta — мировой угол целевой зоны и линии засчитывания
	// (верхняя точка сферы, z = 0).
	TargetTheta = math.Pi / 2

	// Бюджеты жизни сущностей в углах поворота. Плитке нужно 30°, чтобы
	// дойти от точки спавна до линии засчитывания, плюс 20° на выбег.
	TileLifespanAngle  = 50 * math.Pi / 180
	TrailLifespanAngle = 20 * math.Pi / 180

	LaneCount    = 4
	TileDepthMin = 2.0
	TileDepthMax = 6.0

	// Высота одного сегмента следа вдоль направления движения.
	TrailHeight = 1.0

	// Симметричный диапазон, в который зажимается X целевой зоны.
	TargetRangeX = 1.0

	// Hold-to-hit: штраф за ранний отпуск и очки за удержанную плитку.
	HoldReleasePenalty = 0.2
	HoldHitScore       = 10

	// Coverage: порог покрытия, ниже которого теряется жизнь.
	LifeLossPercent = 50.0
	StartingLives   = 3

	ScoreFlashDuration = 0.8
	ScoreFlashRise     = 26.0

	// Экранные масштабы (чисто визуальные): дорожки узкие относительно
	// радиуса сферы, поэтому X растягивается отдельным множителем.
	LaneScale     = 160.0
	DepthScale    = 12.0
	RenderRadius  = 560.0
	SphereCenterX = ScreenWidth / 2
	SphereCenterY = 620.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SelectorButtonY  = 660.0
	SelectorButtonR  = 22.0
)

// LaneOffsets — фиксированные X-позиции дорожек.
var LaneOffsets = [LaneCount]float64{-0.75, -0.25, 0.25, 0.75}

var (
	BackgroundColor = color.RGBA{12, 12, 24, 255}
	SphereColor     = color.RGBA{30, 34, 60, 255}
	SphereRimColor  = color.RGBA{90, 100, 150, 255}
	TargetColor     = color.RGBA{240, 240, 240, 200}
	TargetHitColor  = color.RGBA{255, 255, 160, 230}
	TrailColor      = color.RGBA{200, 200, 220, 90}
	TrailHighlight  = color.RGBA{255, 250, 180, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	LifeColor       = color.RGBA{220, 70, 90, 255}
	LifeLostColor   = color.RGBA{70, 70, 80, 255}
	FlashGoodColor  = color.RGBA{120, 255, 140, 255}
	FlashBadColor   = color.RGBA{255, 110, 110, 255}
)
