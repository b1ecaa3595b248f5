package model

// Level is a user's position in the curated curriculum.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Levels in curriculum order.
var Levels = []Level{Beginner, Intermediate, Advanced}

func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Next returns the following level and whether one exists.
// Advanced is the last level.
func (l Level) Next() (Level, bool) {
	switch l {
	case Beginner:
		return Intermediate, true
	case Intermediate:
		return Advanced, true
	}
	return "", false
}
