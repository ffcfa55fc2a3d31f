package engine

import (
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/stretchr/testify/assert"
)

func chainUnits() []domain.Unit {
	return []domain.Unit{
		{ID: "u1", Lessons: []domain.Lesson{{ID: "l1"}, {ID: "l2"}}},
		{ID: "u2", Lessons: []domain.Lesson{{ID: "l3"}, {ID: "l4"}}},
	}
}

func completedSet(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestIsLessonUnlocked_LinearChain(t *testing.T) {
	units := chainUnits()

	// Nothing completed: only the very first lesson is reachable.
	none := completedSet()
	assert.True(t, IsLessonUnlocked(units, "l1", none))
	assert.False(t, IsLessonUnlocked(units, "l2", none))
	assert.False(t, IsLessonUnlocked(units, "l3", none))
	assert.False(t, IsLessonUnlocked(units, "l4", none))

	// l1 done opens l2 but not the next unit.
	afterL1 := completedSet("l1")
	assert.True(t, IsLessonUnlocked(units, "l2", afterL1))
	assert.False(t, IsLessonUnlocked(units, "l3", afterL1))

	// Completing all of u1 opens u2's first lesson only.
	afterU1 := completedSet("l1", "l2")
	assert.True(t, IsLessonUnlocked(units, "l3", afterU1))
	assert.False(t, IsLessonUnlocked(units, "l4", afterU1))

	afterL3 := completedSet("l1", "l2", "l3")
	assert.True(t, IsLessonUnlocked(units, "l4", afterL3))
}

func TestIsUnitUnlocked(t *testing.T) {
	units := chainUnits()

	assert.True(t, IsUnitUnlocked(units, "u1", completedSet()))
	assert.False(t, IsUnitUnlocked(units, "u2", completedSet("l1")))
	assert.True(t, IsUnitUnlocked(units, "u2", completedSet("l1", "l2")))
	assert.False(t, IsUnitUnlocked(units, "missing", completedSet("l1", "l2")))
}

func TestUnlock_DerivedFromCompletedSet(t *testing.T) {
	units := chainUnits()

	// Unlock state is a pure function of the completed set: shrinking the
	// set (a reset) immediately re-locks everything downstream.
	all := completedSet("l1", "l2", "l3")
	assert.True(t, IsLessonUnlocked(units, "l4", all))

	assert.False(t, IsLessonUnlocked(units, "l4", completedSet()))
	assert.True(t, IsLessonUnlocked(units, "l1", completedSet()))
}

func TestIsLessonUnlocked_UnknownLesson(t *testing.T) {
	assert.False(t, IsLessonUnlocked(chainUnits(), "ghost", completedSet()))
}
