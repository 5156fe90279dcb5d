// internal/defs/types.go
package defs

// Mode определяет вариант геймплея.
type Mode string

const (
	// ModeCoverage — плитка пассивно накапливает покрытие от следов,
	// очки начисляются по проценту покрытия при пересечении линии.
	ModeCoverage Mode = "COVERAGE"
	// ModeHold — плитку нужно удерживать, пока она проходит целевую зону.
	ModeHold Mode = "HOLD"
)

// WidthClassDefinition holds the static data for one selectable tile width.
type WidthClassDefinition struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Label  string  `json:"label"`
	Weight int     `json:"weight"` // Вес для взвешенного выбора при спавне
	Color  RGBA    `json:"color"`
}

// DifficultyDefinition описывает политику интервала спавна плиток.
// При RampDuration <= 0 интервал фиксированный (StartInterval).
type DifficultyDefinition struct {
	ID            string  `json:"id"`
	StartInterval float64 `json:"start_interval"` // секунды
	MinInterval   float64 `json:"min_interval"`   // секунды
	RampDuration  float64 `json:"ramp_duration"`  // секунды до минимума
	Lives         int     `json:"lives"`          // 0 — бесконечный режим
}

// RGBA — сериализуемый цвет для JSON-определений.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}
