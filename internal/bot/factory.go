package bot

import (
	"napoleon/internal/domain"
)

// NewBrain creates the strategy for an archetype, applying its tuning.
func NewBrain(a domain.Archetype) Brain {
	return &StandardBrain{weights: TuningFor(a)}
}
