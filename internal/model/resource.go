package model

// Resource is a curated external learning link. The catalog is seeded once
// and never mutated by users.
// swagger:model Resource
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Level       Level    `json:"level"`
	Tags        []string `json:"tags"`
}

// FilterResourcesByLevel returns the resources at the given level,
// preserving catalog order.
func FilterResourcesByLevel(resources []Resource, level Level) []Resource {
	var out []Resource
	for _, r := range resources {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}
