package model

import "time"

// UserProgress is the backend-agnostic view of a user's state. Usernames are
// free-text identifiers; users are created lazily on first sight and the
// completion list is treated as a set.
// swagger:model UserProgress
type UserProgress struct {
	Username           string    `json:"username"`
	CompletedResources []string  `json:"completed_resources"`
	CurrentLevel       Level     `json:"current_level"`
	LastUpdated        time.Time `json:"last_updated"`
}

// Completed reports whether the resource id is in the completion set.
func (p UserProgress) Completed(resourceID string) bool {
	for _, id := range p.CompletedResources {
		if id == resourceID {
			return true
		}
	}
	return false
}

// CompletedResource is one row of the (username, resource) completion
// relation. At most one row exists per pair.
type CompletedResource struct {
	Username    string    `json:"username"`
	ResourceID  string    `json:"resource_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// IDSet builds a membership set from a list of ids.
func IDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
