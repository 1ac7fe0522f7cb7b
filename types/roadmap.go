package types

// Roadmap item areas.
const (
	RoadmapAreaPortfolio = "portfolio"
	RoadmapAreaCLI       = "cli"
	RoadmapAreaWebshop   = "webshop"
	RoadmapAreaOther     = "other"
)

// Roadmap item statuses.
const (
	RoadmapStatusPlanned    = "planned"
	RoadmapStatusInProgress = "in-progress"
	RoadmapStatusCompleted  = "completed"
)

// RoadmapItem is a planned or completed piece of work on the public roadmap.
type RoadmapItem struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	Area          string `json:"area" yaml:"area"`
	Status        string `json:"status" yaml:"status"`
	TargetRelease string `json:"targetRelease,omitempty" yaml:"target_release"`
	Priority      string `json:"priority,omitempty" yaml:"priority"` // low, medium, high
}
