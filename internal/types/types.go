// internal/types/types.go
package types

// EntityID identifies a live entity. Zero means "none".
type EntityID uint64
