package model

// Project is a guided practice project. Same lifecycle as Resource:
// seeded once, read-only afterwards.
// swagger:model Project
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	Difficulty  int      `json:"difficulty"` // 1 (easiest) to 5 (hardest)
	Skills      []string `json:"skills"`
	Details     string   `json:"details"`
	StarterCode string   `json:"starter_code,omitempty"`
}
