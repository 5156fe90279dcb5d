// internal/event/types.go
package event

const (
	TileScored EventType = "TileScored" // Плитка засчитана (Data: ScorePayload)
	LifeLost   EventType = "LifeLost"   // Потеряна жизнь (Data: оставшиеся жизни)
	GameOver   EventType = "GameOver"   // Игра окончена (Data: финальный счёт)
)

// ScorePayload — данные события TileScored.
type ScorePayload struct {
	Delta   int     // Начисленные очки
	Percent float64 // Итоговый процент покрытия (0 в hold-to-hit режиме)
	LaneX   float64 // X дорожки для позиционирования вспышки
	Good    bool    // Прошла ли плитка порог потери жизни
}
