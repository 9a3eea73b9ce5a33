// Package pagination normalizes client-supplied result limits.
package pagination

// LimitConfig configures limit normalization.
type LimitConfig struct {
	Default int
	Max     int
}

// ClampLimit applies defaults and ceilings for result limits. A zero or
// negative value selects the default; values above Max are silently clamped.
func ClampLimit(value int32, cfg LimitConfig) int {
	limit := int(value)
	if limit <= 0 {
		limit = cfg.Default
	}
	if cfg.Max > 0 && limit > cfg.Max {
		limit = cfg.Max
	}
	if limit <= 0 {
		limit = 1
	}
	return limit
}
