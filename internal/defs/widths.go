// internal/defs/widths.go
package defs

// WidthClassLibrary — библиотека классов ширины в порядке индексов.
// Индекс класса ширины — это индекс в этом срезе; он же используется
// как индекс выбранной ширины целевой зоны.
var WidthClassLibrary = []WidthClassDefinition{
	{ID: "WIDTH_NARROW", Width: 0.30, Label: "S", Weight: 3, Color: RGBA{R: 120, G: 200, B: 255, A: 255}},
	{ID: "WIDTH_MEDIUM", Width: 0.45, Label: "M", Weight: 4, Color: RGBA{R: 140, G: 255, B: 160, A: 255}},
	{ID: "WIDTH_WIDE", Width: 0.60, Label: "L", Weight: 3, Color: RGBA{R: 255, G: 200, B: 110, A: 255}},
	{ID: "WIDTH_HUGE", Width: 0.75, Label: "XL", Weight: 2, Color: RGBA{R: 255, G: 130, B: 170, A: 255}},
}

// DifficultyLibrary — пресеты сложности, ключ — идентификатор пресета.
var DifficultyLibrary = map[string]DifficultyDefinition{
	"easy":   {ID: "easy", StartInterval: 2.5, MinInterval: 1.2, RampDuration: 90, Lives: 5},
	"normal": {ID: "normal", StartInterval: 2.0, MinInterval: 0.75, RampDuration: 60, Lives: 3},
	"hard":   {ID: "hard", StartInterval: 1.5, MinInterval: 0.5, RampDuration: 45, Lives: 3},
	// Фиксированный интервал без рампы, для демонстраций и тестов.
	"fixed": {ID: "fixed", StartInterval: 2.0, MinInterval: 2.0, RampDuration: 0, Lives: 3},
	// Lives <= 0 — бесконечный режим: промахи не стоят жизней.
	"endless": {ID: "endless", StartInterval: 2.0, MinInterval: 0.75, RampDuration: 60, Lives: 0},
}
