package model

// Platform names for practice problems.
const (
	PlatformLeetCode   = "LeetCode"
	PlatformHackerRank = "HackerRank"
)

// PracticeProblem is a curated coding problem hosted on an external judge.
// swagger:model PracticeProblem
type PracticeProblem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Platform    string   `json:"platform"`
	Tags        []string `json:"tags"`
}

// DifficultiesForLevel maps a curriculum level to the platform difficulty
// labels considered appropriate for it.
func DifficultiesForLevel(level Level) []string {
	switch level {
	case Beginner:
		return []string{"Easy", "Basic"}
	case Intermediate:
		return []string{"Medium", "Intermediate"}
	case Advanced:
		return []string{"Hard", "Advanced", "Expert"}
	}
	return []string{"Easy", "Medium", "Hard"}
}
