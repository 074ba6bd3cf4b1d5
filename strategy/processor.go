package strategy

import (
	"github.com/kbukum/patternkit/errors"
)

// Processor is the strategy context. It holds the current sort strategy and
// applies it to data without knowing which algorithm runs.
type Processor struct {
	strategy SortStrategy
}

// NewProcessor creates a processor with an optional initial strategy.
func NewProcessor(s SortStrategy) *Processor {
	return &Processor{strategy: s}
}

// Use swaps the active strategy.
func (p *Processor) Use(s SortStrategy) {
	p.strategy = s
}

// Process sorts data in place using the active strategy.
func (p *Processor) Process(data []int) error {
	if p.strategy == nil {
		return errors.MissingField("strategy")
	}
	p.strategy.Sort(data)
	return nil
}
