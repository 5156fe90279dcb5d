package app

import (
	"math"
	"testing"

	"go-sphere-rhythm/internal/component"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
)

const testDT = 0.05

func newTestGame(mode defs.Mode, seed int64) *Game {
	return NewGame(mode, "fixed", seed, nil)
}

// advanceUntil гоняет кадры, пока условие не выполнится или не истечёт
// лимит времени.
func advanceUntil(g *Game, maxSeconds float64, cond func() bool) bool {
	steps := int(maxSeconds / testDT)
	for i := 0; i < steps; i++ {
		if cond() {
			return true
		}
		g.Update(testDT)
	}
	return cond()
}

func TestRotationAdvancesOutsideGameplay(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)

	for i := 0; i < 3; i++ {
		g.Update(1.0)
	}

	if math.Abs(g.Rotation()-3*config.AngularVelocity) > 1e-9 {
		t.Errorf("Rotation = %v, want %v", g.Rotation(), 3*config.AngularVelocity)
	}
	// Геймплей не идёт: ни плиток, ни игрового времени.
	if len(g.ECS.Tiles) != 0 {
		t.Errorf("tiles spawned before StartGame: %d", len(g.ECS.Tiles))
	}
	if g.GetGameTime() != 0 {
		t.Errorf("game time advanced before StartGame: %v", g.GetGameTime())
	}
}

func TestStartGameSyncsSpawnerToRotation(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)
	for i := 0; i < 5; i++ {
		g.Update(1.0) // фаза меню, сфера докручивается
	}

	g.StartGame()
	if !g.IsPlaying() {
		t.Fatal("not playing after StartGame")
	}
	if got := g.TileSpawner.SpawnAngle(); math.Abs(got-g.Rotation()) > 1e-9 {
		t.Errorf("spawn angle = %v, want synced to rotation %v", got, g.Rotation())
	}
}

func TestPauseFreezesGameplayNotRotation(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)
	g.StartGame()
	g.SetPaused(true)

	before := g.Rotation()
	for i := 0; i < 3; i++ {
		g.Update(1.0)
	}

	if g.Rotation() <= before {
		t.Error("rotation frozen during pause")
	}
	if g.GetGameTime() != 0 {
		t.Errorf("game time advanced during pause: %v", g.GetGameTime())
	}
	if len(g.ECS.Tiles) != 0 {
		t.Errorf("tiles spawned during pause: %d", len(g.ECS.Tiles))
	}

	g.SetPaused(false)
	if !advanceUntil(g, 10, func() bool { return len(g.ECS.Tiles) > 0 }) {
		t.Error("no tiles after unpause")
	}
}

// Долгая пауза не рассинхронизирует партию с часами вращения: плитка в
// полёте после снятия паузы стоит там же, где стояла.
func TestUnpausePreservesWorldState(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 8)
	g.StartGame()

	if !advanceUntil(g, 10, func() bool { return len(g.ECS.Tiles) > 0 }) {
		t.Fatal("no tile spawned")
	}
	var tile *component.Tile
	for _, tl := range g.ECS.Tiles {
		tile = tl
	}
	worldBefore := tile.WorldTheta(g.Rotation())

	g.SetPaused(true)
	for i := 0; i < 30; i++ { // дуга паузы длиннее бюджета плитки
		g.Update(1.0)
	}
	g.SetPaused(false)
	g.Update(testDT)

	if tile.Disposed() {
		t.Fatal("in-flight tile disposed by the pause arc")
	}
	if tile.Passed {
		t.Fatal("in-flight tile passed the scoring line during pause")
	}
	got := tile.WorldTheta(g.Rotation())
	if math.Abs(got-worldBefore) > 3*testDT*config.AngularVelocity {
		t.Errorf("world theta drifted across pause: %v -> %v", worldBefore, got)
	}
	if g.Lives() != 3 {
		t.Errorf("Lives = %d after pause, want 3", g.Lives())
	}
}

// Плитка, рождённая после долгой паузы, появляется впереди линии
// засчитывания, а не просроченной.
func TestTileSpawnedAfterPauseIsAhead(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 8)
	g.StartGame()

	g.SetPaused(true)
	for i := 0; i < 30; i++ {
		g.Update(1.0)
	}
	g.SetPaused(false)

	if !advanceUntil(g, 10, func() bool { return len(g.ECS.Tiles) > 0 }) {
		t.Fatal("no tile spawned after unpause")
	}
	var tile *component.Tile
	for _, tl := range g.ECS.Tiles {
		tile = tl
	}

	if got := tile.WorldTheta(g.Rotation()); got <= config.TargetTheta {
		t.Errorf("tile born at world theta %v, want ahead of the scoring line %v", got, config.TargetTheta)
	}
	if g.Rotation()-tile.SpawnAngle >= config.TileLifespanAngle {
		t.Error("tile born past its rotation budget")
	}
	if tile.Passed || tile.Disposed() {
		t.Error("tile born already passed or disposed")
	}
	if g.Lives() != 3 {
		t.Errorf("Lives = %d, want no loss from a post-pause spawn", g.Lives())
	}
}

// Удержание не переживает паузу: вход отпускается при входе в неё, и
// первый кадр после снятия не выбрасывает следы на всю дугу паузы.
func TestPauseReleasesHeldInput(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 8)
	g.StartGame()
	g.OnHitStart()
	if !g.IsHitting() {
		t.Fatal("not hitting after OnHitStart")
	}

	g.SetPaused(true)
	if g.IsHitting() {
		t.Fatal("hit input survived entering pause")
	}
	for i := 0; i < 30; i++ {
		g.Update(1.0)
	}
	g.SetPaused(false)
	g.Update(testDT)
	if len(g.ECS.Trails) != 0 {
		t.Fatalf("%d trails emitted on the first unpaused frame", len(g.ECS.Trails))
	}

	// Повторное нажатие начинает каденцию заново от текущей ротации.
	g.OnHitStart()
	g.Update(testDT)
	if len(g.ECS.Trails) > 1 {
		t.Errorf("%d trails in one frame after a re-press, want at most 1", len(g.ECS.Trails))
	}
}

// Пауза посреди удержания обрывает ноту со штрафом раннего отпуска.
func TestPauseBreaksHold(t *testing.T) {
	g := newTestGame(defs.ModeHold, 3)
	g.StartGame()
	tile := holdTestTile(g)
	g.MoveTargetZone(tile.LaneX)
	g.OnHitStart()
	for i := 0; i < 6; i++ { // 0.3 секунды удержания
		g.Update(testDT)
	}

	g.SetPaused(true)
	if tile.Hitting {
		t.Error("tile still held through pause")
	}
	if math.Abs(tile.HitProgress-0.55) > 1e-9 {
		t.Errorf("HitProgress = %v, want release penalty applied", tile.HitProgress)
	}
}

func TestMoveTargetZoneClamp(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)

	g.MoveTargetZone(5)
	if g.ECS.Target.X != config.TargetRangeX {
		t.Errorf("Target.X = %v, want clamp to %v", g.ECS.Target.X, config.TargetRangeX)
	}
	g.MoveTargetZone(-5)
	if g.ECS.Target.X != -config.TargetRangeX {
		t.Errorf("Target.X = %v, want clamp to %v", g.ECS.Target.X, -config.TargetRangeX)
	}
	g.MoveTargetZone(0.3)
	if g.ECS.Target.X != 0.3 {
		t.Errorf("Target.X = %v, want 0.3", g.ECS.Target.X)
	}
}

func TestWidthSwitchRejectedWhileHitting(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)
	g.StartGame()

	g.SetTargetWidthIndex(2)
	if g.TargetWidthIndex() != 2 {
		t.Fatalf("width index = %d, want 2", g.TargetWidthIndex())
	}

	g.OnHitStart()
	g.SetTargetWidthIndex(0)
	if g.TargetWidthIndex() != 2 {
		t.Error("width switch accepted mid-hold")
	}
	g.OnHitEnd()

	g.SetTargetWidthIndex(0)
	if g.TargetWidthIndex() != 0 {
		t.Error("width switch rejected after release")
	}

	// Некорректные индексы молча игнорируются.
	g.SetTargetWidthIndex(-1)
	g.SetTargetWidthIndex(len(defs.WidthClassLibrary))
	if g.TargetWidthIndex() != 0 {
		t.Errorf("width index = %d after invalid switches, want 0", g.TargetWidthIndex())
	}
}

// Полный happy path режима покрытия: удержание над плиткой от спавна до
// линии засчитывания даёт высокий процент и очки.
func TestCoverageScoring(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 1)
	g.StartGame()

	if !advanceUntil(g, 10, func() bool { return len(g.ECS.Tiles) > 0 }) {
		t.Fatal("no tile spawned")
	}
	var tile *component.Tile
	for _, tl := range g.ECS.Tiles {
		tile = tl
	}

	g.SetTargetWidthIndex(tile.WidthClass)
	g.MoveTargetZone(tile.LaneX)
	g.OnHitStart()
	if !g.IsHitting() {
		t.Fatal("not hitting after OnHitStart")
	}

	sawTrails := false
	ok := advanceUntil(g, 30, func() bool {
		if len(g.ECS.Trails) > 0 {
			sawTrails = true
		}
		return tile.Passed
	})
	g.OnHitEnd()

	if !ok {
		t.Fatal("tile never crossed the scoring line")
	}
	if !sawTrails {
		t.Error("no trails emitted during the hold")
	}
	if tile.CoveragePercent < 40 {
		t.Errorf("CoveragePercent = %v, want a well-covered tile", tile.CoveragePercent)
	}
	wantScore := int(math.Round(tile.CoveragePercent))
	if g.Score() != wantScore {
		t.Errorf("Score = %d, want rounded percent %d", g.Score(), wantScore)
	}
	if g.Score() > 100 {
		t.Errorf("Score = %d exceeds a single tile maximum", g.Score())
	}
}

// Три непокрытые плитки подряд стоят всех трёх жизней; колбэк game over
// вызывается ровно один раз.
func TestCoverageMissesDrainLives(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 42)

	calls := 0
	finalScore := -1
	g.SetGameOverFunc(func(score int) {
		calls++
		finalScore = score
	})

	g.StartGame()
	if g.Lives() != 3 {
		t.Fatalf("Lives = %d, want 3", g.Lives())
	}

	if !advanceUntil(g, 60, func() bool { return g.IsGameOver() }) {
		t.Fatal("game over never triggered")
	}

	if g.Lives() != 0 {
		t.Errorf("Lives = %d at game over, want 0", g.Lives())
	}
	if calls != 1 {
		t.Errorf("game over callback fired %d times, want 1", calls)
	}
	if finalScore != 0 {
		t.Errorf("final score = %d, want 0 for full misses", finalScore)
	}

	// Дальнейшие кадры не перезапускают переход.
	for i := 0; i < 100; i++ {
		g.Update(testDT)
	}
	if calls != 1 {
		t.Errorf("game over callback refired: %d calls", calls)
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(defs.ModeCoverage, 42)
	g.StartGame()
	g.ECS.Status.Score = 77

	if !advanceUntil(g, 60, func() bool { return g.IsGameOver() }) {
		t.Fatal("game over never triggered")
	}
	if g.HighScore() != 77 {
		t.Fatalf("HighScore = %d, want 77", g.HighScore())
	}

	g.Restart()

	if g.Score() != 0 || g.Lives() != 3 {
		t.Errorf("score/lives after restart = %d/%d, want 0/3", g.Score(), g.Lives())
	}
	if g.IsGameOver() || !g.IsPlaying() {
		t.Error("restart did not return to gameplay")
	}
	if g.Rotation() != 0 {
		t.Errorf("Rotation after restart = %v, want 0", g.Rotation())
	}
	if g.GetGameTime() != 0 {
		t.Errorf("game time after restart = %v, want 0", g.GetGameTime())
	}
	if len(g.ECS.Tiles) != 0 || len(g.ECS.Trails) != 0 {
		t.Error("entities survived the restart")
	}
	if g.HighScore() != 77 {
		t.Errorf("HighScore after restart = %d, want 77", g.HighScore())
	}
}

// holdTestTile ставит плитку глубины 4 передней кромкой вплотную к линии
// засчитывания при нулевой ротации.
func holdTestTile(g *Game) *component.Tile {
	halfDepthAngle := 4.0 / 2 / config.SphereRadius
	spawnAngle := config.TargetTheta + halfDepthAngle - 1e-6 - config.LeadAngle
	tile := component.NewTile(1, 1, 4.0, spawnAngle)
	g.ECS.Tiles[g.ECS.NewEntity()] = tile
	return tile
}

// Непрерывное удержание завершает прогресс ровно в кадр, когда глубина
// плитки полностью прошла через зону.
func TestHoldModeCompletion(t *testing.T) {
	g := newTestGame(defs.ModeHold, 3)
	g.StartGame()
	tile := holdTestTile(g)

	g.MoveTargetZone(tile.LaneX)
	g.OnHitStart()
	if !tile.Hitting {
		t.Fatal("tile under the zone did not take the hit")
	}

	// Транзит глубины 4 на скорости 10: 0.4 секунды.
	for i := 0; i < 8; i++ {
		g.Update(testDT)
	}
	g.OnHitEnd()

	if !tile.Scored {
		t.Fatal("held tile not scored")
	}
	if g.Score() != config.HoldHitScore {
		t.Errorf("Score = %d, want %d", g.Score(), config.HoldHitScore)
	}
	if g.Lives() != 3 {
		t.Errorf("Lives = %d, want no loss on a completed hold", g.Lives())
	}
}

// Ранний отпуск откатывает прогресс; плитка уходит за линию незасчитанной
// и стоит жизни.
func TestHoldModeEarlyReleaseCostsLife(t *testing.T) {
	g := newTestGame(defs.ModeHold, 3)
	g.StartGame()
	tile := holdTestTile(g)

	g.MoveTargetZone(tile.LaneX)
	g.OnHitStart()
	for i := 0; i < 6; i++ { // 0.3 секунды удержания
		g.Update(testDT)
	}
	g.OnHitEnd()

	if math.Abs(tile.HitProgress-0.55) > 1e-9 {
		t.Errorf("HitProgress after release = %v, want 0.55", tile.HitProgress)
	}

	if !advanceUntil(g, 5, func() bool { return tile.Passed }) {
		t.Fatal("tile never crossed the scoring line")
	}
	if tile.Scored {
		t.Error("broken hold still counted as scored")
	}
	if g.Lives() != 2 {
		t.Errorf("Lives = %d, want 2 after an unscored pass", g.Lives())
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
}

func TestHoldModeNeedsTileUnderZone(t *testing.T) {
	g := newTestGame(defs.ModeHold, 3)
	g.StartGame()
	tile := holdTestTile(g)

	// Зона на дальней дорожке: плитка вне досягаемости.
	g.MoveTargetZone(0.75)
	g.OnHitStart()
	if tile.Hitting {
		t.Error("hit latched onto a tile outside the zone")
	}
	g.OnHitEnd()
}

// Один и тот же сид даёт побайтово одинаковый прогон.
func TestSeededRunsAreDeterministic(t *testing.T) {
	a := newTestGame(defs.ModeCoverage, 11)
	b := newTestGame(defs.ModeCoverage, 11)
	a.StartGame()
	b.StartGame()

	for i := 0; i < 240; i++ { // 12 секунд
		a.Update(testDT)
		b.Update(testDT)
	}

	idsA := a.ECS.SortedTileIDs()
	idsB := b.ECS.SortedTileIDs()
	if len(idsA) != len(idsB) {
		t.Fatalf("tile counts diverge: %d vs %d", len(idsA), len(idsB))
	}
	for i := range idsA {
		ta, tb := a.ECS.Tiles[idsA[i]], b.ECS.Tiles[idsB[i]]
		if ta.Lane != tb.Lane || ta.WidthClass != tb.WidthClass || ta.Depth != tb.Depth {
			t.Errorf("tile %d diverges between seeded runs", i)
		}
	}
}

// Плитка живёт ровно свой бюджет поворота и утилизируется из всех
// активных коллекций. Бесконечный режим: промахи не останавливают игру.
func TestTileDisposedAfterLifespan(t *testing.T) {
	g := NewGame(defs.ModeCoverage, "endless", 4, nil)
	g.StartGame()

	if !advanceUntil(g, 10, func() bool { return len(g.ECS.Tiles) > 0 }) {
		t.Fatal("no tile spawned")
	}
	var tile *component.Tile
	for _, tl := range g.ECS.Tiles {
		tile = tl
	}

	budgetSeconds := config.TileLifespanAngle/config.AngularVelocity + 1
	advanceUntil(g, budgetSeconds, func() bool { return tile.Disposed() })

	if !tile.Disposed() {
		t.Fatal("tile outlived its rotation budget")
	}
	for _, tl := range g.ECS.Tiles {
		if tl == tile {
			t.Error("disposed tile still present in the active map")
		}
	}
	if g.IsGameOver() {
		t.Error("endless preset triggered game over on misses")
	}
}
