// internal/component/game_status.go
package component

// GameStatus — агрегированное состояние партии.
type GameStatus struct {
	Score     int
	Lives     int // 0 при бесконечном режиме
	HighScore int
	Playing   bool
	GameOver  bool
	Paused    bool
	IsHitting bool
}
