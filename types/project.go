package types

// Project statuses.
const (
	ProjectStatusActive   = "active"
	ProjectStatusBeta     = "beta"
	ProjectStatusComplete = "complete"
	ProjectStatusArchived = "archived"
)

// Project is an entry in the projects showcase.
type Project struct {
	Slug             string        `json:"slug" yaml:"slug"`
	Name             string        `json:"name" yaml:"name"`
	Tagline          string        `json:"tagline" yaml:"tagline"`
	ShortDescription string        `json:"shortDescription" yaml:"short_description"`
	LongDescription  string        `json:"longDescription" yaml:"long_description"`
	TechStack        []string      `json:"techStack" yaml:"tech_stack"`
	Links            ProjectLinks  `json:"links" yaml:"links"`
	Status           string        `json:"status" yaml:"status"`
	Featured         bool          `json:"featured" yaml:"featured"`
	ThumbnailImage   string        `json:"thumbnailImage,omitempty" yaml:"thumbnail_image"`
	RoadmapItems     []string      `json:"roadmapItems,omitempty" yaml:"roadmap_items"`
	Version          string        `json:"version,omitempty" yaml:"version"`
	Features         []string      `json:"features,omitempty" yaml:"features"`
	DemoCommands     []DemoCommand `json:"demoCommands,omitempty" yaml:"demo_commands"`
}

// ProjectLinks groups the outbound links of a project.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty" yaml:"github"`
	Demo   string `json:"demo,omitempty" yaml:"demo"`
	Docs   string `json:"docs,omitempty" yaml:"docs"`
}

// DemoCommand is an example invocation shown for CLI projects.
type DemoCommand struct {
	Input       string `json:"input" yaml:"input"`
	Output      string `json:"output" yaml:"output"`
	RiskLevel   string `json:"riskLevel,omitempty" yaml:"risk_level"` // low, medium, high, critical
	Warning     string `json:"warning,omitempty" yaml:"warning"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation"`
}
