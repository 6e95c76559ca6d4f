package game

// Fixed experience awards for the two completion actions.
const (
	TaskXP  = 10
	HabitXP = 5
)

// LevelUpThreshold returns the experience needed to advance past the given
// level.
func LevelUpThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}
