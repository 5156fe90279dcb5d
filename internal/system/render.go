// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-sphere-rhythm/internal/assets"
	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/pkg/spherical"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs     *entity.ECS
	sprites *assets.SpriteManager
	face    font.Face
}

func NewRenderSystem(ecs *entity.ECS, sprites *assets.SpriteManager, face font.Face) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites, face: face}
}

// project переводит точку на сфере в экранные координаты. Дорожки узкие
// относительно радиуса, поэтому X растягивается отдельным множителем.
func project(x, theta, height float64) (sx, sy float64) {
	p := spherical.Place(x, theta, config.SphereRadius, height)
	sx = config.SphereCenterX + p.Position.X*config.LaneScale
	sy = config.SphereCenterY - p.Position.Y*(config.RenderRadius/config.SphereRadius)
	return sx, sy
}

func (s *RenderSystem) Draw(screen *ebiten.Image, rotation float64) {
	screen.DrawImage(s.sprites.Backdrop(), nil)
	s.drawTrails(screen, rotation)
	s.drawTiles(screen, rotation)
	s.drawTarget(screen)
	s.drawFlashes(screen)
}

func (s *RenderSystem) drawTrails(screen *ebiten.Image, rotation float64) {
	for _, id := range s.ecs.SortedTrailIDs() {
		tr := s.ecs.Trails[id]
		theta := tr.WorldTheta(rotation)
		sx, sy := project(tr.X, theta, config.TrailHeightOffset)

		w := tr.Width * config.LaneScale
		h := config.TrailHeight * config.DepthScale * math.Sin(theta)
		col := config.TrailColor
		if tr.Highlighted {
			col = config.TrailHighlight
		}
		vector.DrawFilledRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), col, true)
	}
}

func (s *RenderSystem) drawTiles(screen *ebiten.Image, rotation float64) {
	for _, id := range s.ecs.SortedTileIDs() {
		t := s.ecs.Tiles[id]
		theta := t.WorldTheta(rotation)
		sx, sy := project(t.LaneX, theta, config.TileHeightOffset)

		w := t.Width * config.LaneScale
		// Лёгкое перспективное сжатие по мере подъёма к верхней точке.
		h := t.Depth * config.DepthScale * math.Abs(math.Sin(theta))
		if h < 2 {
			h = 2
		}

		if t.Sprite == nil && !t.Disposed() {
			t.Sprite = s.sprites.NewTileSprite(t.WidthClass, int(w), int(t.Depth*config.DepthScale))
		}
		if t.Sprite == nil {
			continue
		}

		bounds := t.Sprite.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
		op.GeoM.Translate(sx-w/2, sy-h/2)
		if t.Passed {
			op.ColorScale.ScaleAlpha(0.45)
		}
		screen.DrawImage(t.Sprite, op)

		s.drawTileProgress(screen, t, sx, sy, w, h)
	}
}

// drawTileProgress закрашивает набранную долю плитки: покрытие следами
// либо прогресс удержания.
func (s *RenderSystem) drawTileProgress(screen *ebiten.Image, t *component.Tile, sx, sy, w, h float64) {
	ratio := t.HitProgress
	if t.TotalArea > 0 {
		covered := t.CoverageArea / t.TotalArea
		if covered > ratio {
			ratio = covered
		}
	}
	if ratio <= 0 {
		return
	}
	if ratio > 1 {
		ratio = 1
	}
	fillH := h * ratio
	vector.DrawFilledRect(screen, float32(sx-w/2), float32(sy+h/2-fillH), float32(w), float32(fillH), config.TrailHighlight, true)
}

func (s *RenderSystem) drawTarget(screen *ebiten.Image) {
	target := s.ecs.Target
	if !target.Visible {
		return
	}
	w := defs.WidthClassLibrary[target.WidthIndex].Width * config.LaneScale
	sx, sy := project(target.X, config.TargetTheta, config.TileHeightOffset)

	col := config.TargetColor
	if s.ecs.Status.IsHitting {
		col = config.TargetHitColor
	}
	vector.StrokeRect(screen, float32(sx-w/2), float32(sy-14), float32(w), 28, 2, col, true)
}

func (s *RenderSystem) drawFlashes(screen *ebiten.Image) {
	for _, flash := range s.ecs.ScoreFlashes {
		col := color.RGBA{flash.Col.R, flash.Col.G, flash.Col.B, uint8(255 * flash.Alpha)}
		y := flash.Y - float64(flash.Offset)
		text.Draw(screen, flash.Text, s.face, int(flash.X), int(y), col)
	}
}
