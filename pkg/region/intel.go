package region

import (
	"errors"
	"fmt"
)

// IntelPool is the knowledge budget shared across a region.
type IntelPool struct {
	TotalIntel int `json:"total_intel" yaml:"total_intel"`
	MaxIntel   int `json:"max_intel" yaml:"max_intel"`
}

// Validate checks 0 <= TotalIntel <= MaxIntel and MaxIntel > 0.
func (p IntelPool) Validate() error {
	switch {
	case p.MaxIntel <= 0:
		return errors.New("max intel must be positive")
	case p.TotalIntel < 0:
		return errors.New("total intel must not be negative")
	case p.TotalIntel > p.MaxIntel:
		return fmt.Errorf("total intel %d exceeds max %d", p.TotalIntel, p.MaxIntel)
	}
	return nil
}

// Progress formats the pool as "total/max", e.g. "40/100".
func (p IntelPool) Progress() string {
	return fmt.Sprintf("%d/%d", p.TotalIntel, p.MaxIntel)
}

// Fraction returns TotalIntel/MaxIntel clamped to [0, 1].
func (p IntelPool) Fraction() float64 {
	if p.MaxIntel <= 0 || p.TotalIntel <= 0 {
		return 0
	}
	if p.TotalIntel >= p.MaxIntel {
		return 1
	}
	return float64(p.TotalIntel) / float64(p.MaxIntel)
}
