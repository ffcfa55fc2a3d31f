package engine

import "github.com/alexanderramin/drill/internal/domain"

// The curriculum is one strict linear chain. Reachability is re-derived from
// the completed set on every call; nothing here is cached, so a full reset
// immediately re-locks everything past the first lesson.

// IsUnitUnlocked reports whether a unit is reachable: it is the first unit,
// or every lesson of the immediately preceding unit is completed.
func IsUnitUnlocked(units []domain.Unit, unitID string, completed func(string) bool) bool {
	idx := unitIndex(units, unitID)
	if idx < 0 {
		return false
	}
	if idx == 0 {
		return true
	}
	return unitComplete(&units[idx-1], completed)
}

// IsLessonUnlocked reports whether a lesson is reachable: the very first
// lesson of the very first unit always is; otherwise the lesson immediately
// before it in its unit must be completed, and a unit's opening lesson needs
// the whole previous unit done.
func IsLessonUnlocked(units []domain.Unit, lessonID string, completed func(string) bool) bool {
	for ui := range units {
		for li := range units[ui].Lessons {
			if units[ui].Lessons[li].ID != lessonID {
				continue
			}
			if !IsUnitUnlocked(units, units[ui].ID, completed) {
				return false
			}
			if li == 0 {
				return true
			}
			return completed(units[ui].Lessons[li-1].ID)
		}
	}
	return false
}

func unitIndex(units []domain.Unit, unitID string) int {
	for i := range units {
		if units[i].ID == unitID {
			return i
		}
	}
	return -1
}

func unitComplete(u *domain.Unit, completed func(string) bool) bool {
	for i := range u.Lessons {
		if !completed(u.Lessons[i].ID) {
			return false
		}
	}
	return true
}
