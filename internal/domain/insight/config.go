package insight

import "time"

// Config holds runtime knobs for the insight service.
type Config struct {
	HistoryLimit     int
	MaxHistoryLimit  int
	VolatilityWindow int
	BaselineSalary   float64
	SnapshotTTL      time.Duration
	ArchiveLimit     int
}

func (c Config) withDefaults() Config {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 10
	}
	if c.MaxHistoryLimit <= 0 {
		c.MaxHistoryLimit = 100
	}
	if c.VolatilityWindow <= 0 {
		c.VolatilityWindow = 20
	}
	if c.BaselineSalary <= 0 {
		c.BaselineSalary = 800000
	}
	if c.SnapshotTTL <= 0 {
		c.SnapshotTTL = 7 * 24 * time.Hour
	}
	if c.ArchiveLimit <= 0 {
		c.ArchiveLimit = c.MaxHistoryLimit
	}
	return c
}
