// internal/assets/sprites.go
package assets

import (
	"image/color"

	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteManager управляет созданием и выгрузкой графических ресурсов:
// кэширует статичный задник сферы и штампует спрайты плиток. Спрайт
// плитки переходит в эксклюзивное владение самой плитки.
type SpriteManager struct {
	backdrop *ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{}
}

// Backdrop возвращает кэшированный задник: фон, сфера, ободок и линия
// засчитывания. Рисуется один раз при первом обращении.
func (m *SpriteManager) Backdrop() *ebiten.Image {
	if m.backdrop != nil {
		return m.backdrop
	}

	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	cx := float32(config.SphereCenterX)
	cy := float32(config.SphereCenterY)
	r := float32(config.RenderRadius)
	vector.DrawFilledCircle(img, cx, cy, r, config.SphereColor, true)
	vector.StrokeCircle(img, cx, cy, r, 2, config.SphereRimColor, true)

	// Линия засчитывания над верхней точкой сферы.
	lineY := cy - r
	halfSpan := float32((config.TargetRangeX + 0.4) * config.LaneScale)
	vector.StrokeLine(img, cx-halfSpan, lineY, cx+halfSpan, lineY, 1, config.SphereRimColor, true)

	// Засечки дорожек.
	for _, laneX := range config.LaneOffsets {
		tx := cx + float32(laneX*config.LaneScale)
		vector.StrokeLine(img, tx, lineY-6, tx, lineY+6, 1, config.SphereRimColor, true)
	}

	m.backdrop = img
	return img
}

// NewTileSprite создаёт спрайт плитки указанного класса ширины размером
// w на h пикселей: заливка цветом класса и затемнённая рамка.
func (m *SpriteManager) NewTileSprite(widthClass, w, h int) *ebiten.Image {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	def := defs.WidthClassLibrary[widthClass]
	fill := color.RGBA{def.Color.R, def.Color.G, def.Color.B, def.Color.A}
	border := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, fill.A}

	img := ebiten.NewImage(w, h)
	img.Fill(fill)
	vector.StrokeRect(img, 0, 0, float32(w), float32(h), 2, border, false)
	return img
}

// Unload освобождает кэшированные ресурсы менеджера.
func (m *SpriteManager) Unload() {
	if m.backdrop != nil {
		m.backdrop.Deallocate()
		m.backdrop = nil
	}
}
