// internal/app/game.go
package app

import (
	"math"

	"go-sphere-rhythm/internal/assets"
	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
	"go-sphere-rhythm/internal/entity"
	"go-sphere-rhythm/internal/event"
	"go-sphere-rhythm/internal/system"
	"go-sphere-rhythm/internal/types"
	"go-sphere-rhythm/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Game holds the main game state and logic.
//
// Game владеет часами вращения и всеми активными коллекциями сущностей;
// никто снаружи их не мутирует. Один вызов Update на кадр, вся работа
// синхронная.
type Game struct {
	ECS             *entity.ECS
	TileSpawner     *system.TileSpawnerSystem
	TrailSpawner    *system.TrailSpawnerSystem
	CoverageSystem  *system.CoverageSystem
	FlashSystem     *system.ScoreFlashSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Sprites         *assets.SpriteManager
	Rng             *utils.PRNGService
	FontFace        font.Face

	Mode       defs.Mode
	difficulty defs.DifficultyDefinition

	// Часы вращения: строго неубывающий угол, заменяющий движение вперёд.
	rotation         float64
	gameTime         float64
	pausedAtRotation float64

	activeHitID types.EntityID
	onGameOver  func(finalScore int)
}

// NewGame initializes a new game instance. Seed 0 означает
// недетерминированный рандом.
func NewGame(mode defs.Mode, difficultyID string, seed int64, face font.Face) *Game {
	diff, ok := defs.DifficultyLibrary[difficultyID]
	if !ok {
		panic("unknown difficulty preset: " + difficultyID)
	}

	ecs := entity.NewECS()
	ecs.Status.Lives = diff.Lives
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	sprites := assets.NewSpriteManager()

	g := &Game{
		ECS:             ecs,
		TileSpawner:     system.NewTileSpawnerSystem(ecs, rng, diff),
		TrailSpawner:    system.NewTrailSpawnerSystem(ecs),
		CoverageSystem:  system.NewCoverageSystem(ecs),
		FlashSystem:     system.NewScoreFlashSystem(ecs, dispatcher),
		EventDispatcher: dispatcher,
		Sprites:         sprites,
		Rng:             rng,
		FontFace:        face,
		Mode:            mode,
		difficulty:      diff,
	}
	g.RenderSystem = system.NewRenderSystem(ecs, sprites, face)
	return g
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	// 1. Часы вращения идут всегда: сфера крутится и в меню, и на паузе.
	g.rotation += config.AngularVelocity * deltaTime

	st := g.ECS.Status
	if !st.Playing || st.Paused || st.GameOver {
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	// 2. Спавн плиток.
	g.TileSpawner.Update(deltaTime)

	// 3. Эмиссия следов по угловой каденции, пока удерживается ввод.
	if g.Mode == defs.ModeCoverage && st.IsHitting {
		g.TrailSpawner.UpdateSpawnPosition(g.ECS.Target.X)
		g.TrailSpawner.SpawnTrails(g.rotation)
	}

	// 4. Старение следов и накопление покрытия, либо прогресс удержания.
	if g.Mode == defs.ModeCoverage {
		g.CoverageSystem.Update(deltaTime, g.rotation)
	} else {
		g.updateActiveHit(deltaTime)
	}

	// 5. Старение, засчитывание и утилизация плиток.
	g.updateTiles(deltaTime)

	// 6. Вспышки очков.
	g.FlashSystem.Update(deltaTime)
}

func (g *Game) updateTiles(deltaTime float64) {
	for _, id := range g.ECS.SortedTileIDs() {
		t := g.ECS.Tiles[id]
		t.UpdateAge(deltaTime)

		wasScored := t.Scored
		if t.CheckPassedTarget(g.rotation) {
			if g.Mode == defs.ModeCoverage {
				g.scoreCoverage(t)
			} else if !wasScored {
				g.missHold(t)
			}
			if id == g.activeHitID {
				g.activeHitID = 0
			}
		}

		// Утилизация по бюджету поворота; плитка сразу исчезает из всех
		// активных коллекций.
		if g.rotation-t.SpawnAngle >= config.TileLifespanAngle {
			if id == g.activeHitID {
				g.activeHitID = 0
			}
			t.Dispose()
			delete(g.ECS.Tiles, id)
		}
	}
}

func (g *Game) updateActiveHit(deltaTime float64) {
	if !g.ECS.Status.IsHitting || g.activeHitID == 0 {
		return
	}
	t, ok := g.ECS.Tiles[g.activeHitID]
	if !ok {
		g.activeHitID = 0
		return
	}
	if t.UpdateHit(deltaTime, config.TileSpeed) {
		st := g.ECS.Status
		st.Score += config.HoldHitScore
		g.EventDispatcher.Dispatch(event.Event{Type: event.TileScored, Data: event.ScorePayload{
			Delta: config.HoldHitScore,
			LaneX: t.LaneX,
			Good:  true,
		}})
		g.activeHitID = 0
	}
}

// scoreCoverage начисляет очки по зафиксированному проценту покрытия.
func (g *Game) scoreCoverage(t *component.Tile) {
	st := g.ECS.Status
	delta := int(math.Round(t.CoveragePercent))
	good := t.CoveragePercent >= config.LifeLossPercent
	st.Score += delta
	t.Scored = true

	g.EventDispatcher.Dispatch(event.Event{Type: event.TileScored, Data: event.ScorePayload{
		Delta:   delta,
		Percent: t.CoveragePercent,
		LaneX:   t.LaneX,
		Good:    good,
	}})
	if !good {
		g.loseLife()
	}
}

// missHold — плитка ушла за линию незасчитанной в режиме удержания.
func (g *Game) missHold(t *component.Tile) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.TileScored, Data: event.ScorePayload{
		LaneX: t.LaneX,
		Good:  false,
	}})
	g.loseLife()
}

func (g *Game) loseLife() {
	if g.difficulty.Lives <= 0 {
		return // бесконечный режим
	}
	st := g.ECS.Status
	st.Lives--
	g.EventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: st.Lives})
	if st.Lives <= 0 {
		g.triggerGameOver()
	}
}

// triggerGameOver выполняет переход в game over ровно один раз.
func (g *Game) triggerGameOver() {
	st := g.ECS.Status
	if st.GameOver {
		return
	}
	st.GameOver = true
	st.IsHitting = false
	g.TrailSpawner.StopSpawning()
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: st.Score})
	if g.onGameOver != nil {
		g.onGameOver(st.Score)
	}
}

// --- Публичный API, вызываемый обработчиком ввода и UI ---

// MoveTargetZone двигает целевую зону, зажимая X в допустимый диапазон.
func (g *Game) MoveTargetZone(x float64) {
	g.ECS.Target.X = utils.Clamp(x, -config.TargetRangeX, config.TargetRangeX)
}

// OnHitStart начинает удержание ввода.
func (g *Game) OnHitStart() {
	st := g.ECS.Status
	if !st.Playing || st.Paused || st.GameOver || st.IsHitting {
		return
	}
	st.IsHitting = true

	if g.Mode == defs.ModeCoverage {
		g.TrailSpawner.StartSpawning(g.ECS.Target.X, g.ECS.Target.WidthIndex, g.rotation)
		return
	}
	if id := g.findHitTile(); id != 0 {
		if g.ECS.Tiles[id].StartHit() {
			g.activeHitID = id
		}
	}
}

// OnHitEnd завершает удержание ввода.
func (g *Game) OnHitEnd() {
	st := g.ECS.Status
	if !st.IsHitting {
		return
	}
	st.IsHitting = false

	if g.Mode == defs.ModeCoverage {
		g.TrailSpawner.StopSpawning()
		return
	}
	if t, ok := g.ECS.Tiles[g.activeHitID]; ok {
		t.StopHit()
	}
	g.activeHitID = 0
}

// SetTargetWidthIndex меняет класс ширины целевой зоны. Смена во время
// удержания запрещена, чтобы нельзя было эксплуатировать изменение
// геометрии посреди нажатия; некорректный индекс молча игнорируется.
func (g *Game) SetTargetWidthIndex(index int) {
	if g.ECS.Status.IsHitting {
		return
	}
	if index < 0 || index >= len(defs.WidthClassLibrary) {
		return
	}
	g.ECS.Target.WidthIndex = index
}

// StartGame запускает геймплей после фазы меню. Угол спавна
// синхронизируется с текущей ротацией, чтобы первая плитка не оказалась
// мгновенно просроченной.
func (g *Game) StartGame() {
	g.resetRound()
	g.ECS.Status.Playing = true
	g.TileSpawner.SyncToRotation(g.rotation)
}

// Restart сбрасывает партию: все плитки и следы утилизируются, спавнеры
// и часы вращения возвращаются к начальным значениям. Рекорд сохраняется.
func (g *Game) Restart() {
	g.rotation = 0
	g.resetRound()
	g.ECS.Status.Playing = true
}

func (g *Game) resetRound() {
	for id, t := range g.ECS.Tiles {
		t.Dispose()
		delete(g.ECS.Tiles, id)
	}
	for id, tr := range g.ECS.Trails {
		tr.Dispose()
		delete(g.ECS.Trails, id)
	}
	for id := range g.ECS.ScoreFlashes {
		delete(g.ECS.ScoreFlashes, id)
	}

	g.TileSpawner.Reset()
	g.TrailSpawner.StopSpawning()
	g.activeHitID = 0
	g.gameTime = 0
	g.ECS.GameTime = 0

	st := g.ECS.Status
	st.Score = 0
	st.Lives = g.difficulty.Lives
	st.GameOver = false
	st.Paused = false
	st.IsHitting = false
}

// SetPaused ставит геймплей на паузу; ротация продолжает идти. Вход
// принудительно отпускается при входе в паузу, а при снятии паузы все
// привязанные к сфере углы сдвигаются на прокрученную дугу: мировое
// состояние партии после паузы то же, что и в момент постановки, и ни
// один спавнер не оказывается рассинхронизирован с ротацией.
func (g *Game) SetPaused(paused bool) {
	st := g.ECS.Status
	if st.Paused == paused {
		return
	}
	if paused {
		g.OnHitEnd()
		st.Paused = true
		g.pausedAtRotation = g.rotation
		return
	}
	g.shiftSphereAnchors(g.rotation - g.pausedAtRotation)
	st.Paused = false
}

// shiftSphereAnchors сдвигает углы всех сущностей и спавнеров на дугу,
// прокрученную вне геймплея.
func (g *Game) shiftSphereAnchors(arc float64) {
	for _, t := range g.ECS.Tiles {
		t.Angle += arc
		t.SpawnAngle += arc
	}
	for _, tr := range g.ECS.Trails {
		tr.Angle += arc
		tr.SpawnAngle += arc
	}
	g.TileSpawner.ShiftSpawnAngle(arc)
}

// SetTargetVisible управляет видимостью целевой зоны (меню скрывает её).
func (g *Game) SetTargetVisible(visible bool) {
	g.ECS.Target.Visible = visible
}

// SetGameOverFunc регистрирует колбэк, вызываемый ровно один раз на
// переход в game over. Внешний UI сам решает, что делать дальше.
func (g *Game) SetGameOverFunc(fn func(finalScore int)) {
	g.onGameOver = fn
}

// findHitTile ищет засчитываемую плитку под целевой зоной.
func (g *Game) findHitTile() types.EntityID {
	target := g.ECS.Target
	targetHalf := defs.WidthClassLibrary[target.WidthIndex].Width / 2

	for _, id := range g.ECS.SortedTileIDs() {
		t := g.ECS.Tiles[id]
		if !t.Collidable {
			continue
		}
		halfDepthAngle := t.Depth / 2 / config.SphereRadius
		if math.Abs(t.WorldTheta(g.rotation)-config.TargetTheta) > halfDepthAngle {
			continue
		}
		if math.Abs(t.LaneX-target.X) < t.Width/2+targetHalf {
			return id
		}
	}
	return 0
}

// Draw отрисовывает игровой мир. UI поверх рисуют состояния.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen, g.rotation)
}

// Dispose освобождает все ресурсы, которыми владеет игра.
func (g *Game) Dispose() {
	for id, t := range g.ECS.Tiles {
		t.Dispose()
		delete(g.ECS.Tiles, id)
	}
	for id, tr := range g.ECS.Trails {
		tr.Dispose()
		delete(g.ECS.Trails, id)
	}
	g.Sprites.Unload()
}

// --- Аксессоры ---

func (g *Game) Score() int            { return g.ECS.Status.Score }
func (g *Game) MaxLives() int         { return g.difficulty.Lives }
func (g *Game) TargetWidthIndex() int { return g.ECS.Target.WidthIndex }
func (g *Game) Lives() int            { return g.ECS.Status.Lives }
func (g *Game) HighScore() int        { return g.ECS.Status.HighScore }
func (g *Game) IsGameOver() bool      { return g.ECS.Status.GameOver }
func (g *Game) IsPaused() bool        { return g.ECS.Status.Paused }
func (g *Game) IsPlaying() bool       { return g.ECS.Status.Playing }
func (g *Game) IsHitting() bool       { return g.ECS.Status.IsHitting }
func (g *Game) Rotation() float64     { return g.rotation }
func (g *Game) GetGameTime() float64  { return g.gameTime }
