// internal/component/target.go
package component

// TargetZone — управляемая мышью целевая зона на линии засчитывания.
// Единственное изменяемое значение, принадлежит Game.
type TargetZone struct {
	X          float64
	WidthIndex int
	Visible    bool
}
