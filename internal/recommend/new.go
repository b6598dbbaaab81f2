package recommend

import "github.com/MervynChew/Grab-Voice-AI-Chat/internal/scoring"

// DefaultTopK is how many ranked entries a recommendation lists.
const DefaultTopK = 3

// Formatter renders catalog entries and ranked lists into the
// deterministic response strings sent back to drivers.
type Formatter struct {
	engine *scoring.Engine
	topK   int
}

// New creates a formatter on top of a scoring engine.
func New(engine *scoring.Engine, topK int) *Formatter {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Formatter{
		engine: engine,
		topK:   topK,
	}
}
