// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Идентификаторы выдаются монотонно, поэтому сортировка по ID
// даёт порядок появления сущностей.
type EntityID uint64
