// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри одного матча.
// Ноль зарезервирован под «нет сущности».
type EntityID uint64
