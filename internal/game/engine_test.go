package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/sandeepkv93/habitquest/internal/model"
	"github.com/sandeepkv93/habitquest/internal/state"
)

type memorySaver struct {
	saves       int
	lastProfile model.UserProfile
	lastTasks   []model.Task
	err         error
}

func (m *memorySaver) Save(tasks []model.Task, habits []model.Habit, profile model.UserProfile) error {
	m.saves++
	m.lastTasks = tasks
	m.lastProfile = profile
	return m.err
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T, catalog []model.Quest) (*Engine, *state.Container, *memorySaver) {
	t.Helper()
	st := state.NewContainer()
	saver := &memorySaver{}
	engine := NewEngine(st, saver,
		WithCatalog(catalog),
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(fixedClock),
	)
	return engine, st, saver
}

func taskQuest() model.Quest {
	return model.Quest{Type: model.QuestCompleteTasks, Description: "Complete 3 tasks", Amount: 3, Reward: 50}
}

func habitQuest() model.Quest {
	return model.Quest{Type: model.QuestCompleteHabits, Description: "Mark a habit done today", Amount: 1, Reward: 30}
}

func TestAwardExactThresholdLevelsUp(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	res := engine.AwardExperience(100)

	profile := st.Profile()
	if profile.Level != 2 {
		t.Fatalf("level = %d, want 2", profile.Level)
	}
	if profile.Experience != 0 {
		t.Fatalf("experience = %d, want 0", profile.Experience)
	}
	if len(res.LevelsReached) != 1 || res.LevelsReached[0] != 2 {
		t.Fatalf("levels reached = %v, want [2]", res.LevelsReached)
	}
}

func TestAwardBelowThresholdKeepsLevel(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	res := engine.AwardExperience(99)

	profile := st.Profile()
	if profile.Level != 1 || profile.Experience != 99 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if len(res.LevelsReached) != 0 {
		t.Fatalf("expected no level-ups, got %v", res.LevelsReached)
	}
}

func TestLargeAwardCrossesSeveralThresholds(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	// 300 XP from level 1: 100 to reach level 2, then 200 to reach level 3.
	res := engine.AwardExperience(300)

	profile := st.Profile()
	if profile.Level != 3 || profile.Experience != 0 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if len(res.LevelsReached) != 2 || res.LevelsReached[0] != 2 || res.LevelsReached[1] != 3 {
		t.Fatalf("levels reached = %v, want [2 3]", res.LevelsReached)
	}
}

func TestAssignQuestIdempotent(t *testing.T) {
	engine, st, _ := newTestEngine(t, []model.Quest{taskQuest()})

	first := engine.AssignQuest()
	if first.AssignedQuest == nil {
		t.Fatal("expected a quest assigned")
	}
	second := engine.AssignQuest()
	if second.AssignedQuest != nil {
		t.Fatal("assignment must be a no-op while a quest is active")
	}
	if _, active := st.ActiveQuest(); !active {
		t.Fatal("expected quest still active")
	}
}

func TestAssignQuestEmptyCatalog(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	res := engine.AssignQuest()
	if res.AssignedQuest != nil {
		t.Fatal("empty catalog must assign nothing")
	}
	if _, active := st.ActiveQuest(); active {
		t.Fatal("expected no active quest")
	}
}

func TestTaskQuestCompletesExactlyOnThirdTask(t *testing.T) {
	engine, st, _ := newTestEngine(t, []model.Quest{taskQuest()})
	engine.AssignQuest()

	for _, due := range []string{"2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08"} {
		if _, err := engine.AddTask("task "+due, due); err != nil {
			t.Fatalf("add task: %v", err)
		}
	}

	for i := 0; i < 2; i++ {
		res, err := engine.ToggleTask(i)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if res.CompletedQuest != nil {
			t.Fatalf("quest completed too early on toggle %d", i)
		}
	}

	res, err := engine.ToggleTask(2)
	if err != nil {
		t.Fatalf("toggle 2: %v", err)
	}
	if res.CompletedQuest == nil {
		t.Fatal("expected quest completion on third completed task")
	}
	if res.AssignedQuest == nil {
		t.Fatal("expected a replacement quest immediately after completion")
	}
	if _, active := st.ActiveQuest(); !active {
		t.Fatal("expected an active quest after completion")
	}
	if got := st.Profile().QuestsCompleted; got != 1 {
		t.Fatalf("quests completed = %d, want 1", got)
	}
	// 3 task completions at 10 XP each plus the 50 XP reward.
	if got := st.Profile().Experience; got != 80 {
		t.Fatalf("experience = %d, want 80", got)
	}
}

func TestHabitQuestSatisfiedByAnyHabit(t *testing.T) {
	engine, st, _ := newTestEngine(t, []model.Quest{habitQuest()})
	engine.AssignQuest()

	for _, desc := range []string{"run", "read", "stretch"} {
		if _, err := engine.AddHabit(desc, model.FrequencyDaily, ""); err != nil {
			t.Fatalf("add habit: %v", err)
		}
	}

	res, err := engine.ToggleHabit(1)
	if err != nil {
		t.Fatalf("toggle habit: %v", err)
	}
	if res.CompletedQuest == nil {
		t.Fatal("expected habit quest completed by any habit done today")
	}
	if got := st.Profile().QuestsCompleted; got != 1 {
		t.Fatalf("quests completed = %d, want 1", got)
	}
}

func TestHabitToggleAwardsBothDirections(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	if _, err := engine.AddHabit("run", model.FrequencyDaily, ""); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	first, err := engine.ToggleHabit(0)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	second, err := engine.ToggleHabit(0)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if first.XPAwarded != HabitXP || second.XPAwarded != HabitXP {
		t.Fatalf("expected %d XP on each toggle, got %d then %d", HabitXP, first.XPAwarded, second.XPAwarded)
	}
	if got := st.Profile().Experience; got != 2*HabitXP {
		t.Fatalf("experience = %d, want %d", got, 2*HabitXP)
	}
	if st.AnyHabitDoneOn(fixedClock()) {
		t.Fatal("expected habit unmarked after second toggle")
	}
}

func TestUncompletingTaskAwardsNothing(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	if _, err := engine.AddTask("x", "2026-03-05"); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := engine.ToggleTask(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	res, err := engine.ToggleTask(0)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if res.XPAwarded != 0 {
		t.Fatalf("expected no XP for un-completing, got %d", res.XPAwarded)
	}
	if got := st.Profile().Experience; got != TaskXP {
		t.Fatalf("experience = %d, want %d", got, TaskXP)
	}
}

func TestToggleTaskInvalidIndex(t *testing.T) {
	engine, _, saver := newTestEngine(t, nil)
	before := saver.saves
	if _, err := engine.ToggleTask(5); !errors.Is(err, state.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got: %v", err)
	}
	if saver.saves != before {
		t.Fatal("failed toggle must not persist")
	}
}

func TestAddTaskValidationAbortsWithoutSave(t *testing.T) {
	engine, st, saver := newTestEngine(t, nil)
	if _, err := engine.AddTask("x", "not-a-date"); !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
	if len(st.Tasks()) != 0 {
		t.Fatal("invalid task must not be added")
	}
	if saver.saves != 0 {
		t.Fatal("invalid task must not be persisted")
	}
}

func TestUpdateProfileValidatesBirthYear(t *testing.T) {
	engine, st, _ := newTestEngine(t, nil)
	if _, err := engine.UpdateProfile("Ada", 1899); !errors.Is(err, model.ErrInvalidBirthYear) {
		t.Fatalf("expected ErrInvalidBirthYear, got: %v", err)
	}
	if st.Profile().Name != model.DefaultName {
		t.Fatal("failed update must not change the profile")
	}

	if _, err := engine.UpdateProfile("  ", 1990); err != nil {
		t.Fatalf("update: %v", err)
	}
	profile := st.Profile()
	if profile.Name != model.DefaultName || profile.BirthYear != 1990 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestSaveErrorSurfacesInResult(t *testing.T) {
	engine, _, saver := newTestEngine(t, nil)
	saver.err = errors.New("disk full")
	res, err := engine.AddTask("x", "2026-03-05")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if res.SaveErr == nil {
		t.Fatal("expected save error surfaced in result")
	}
}

func TestQuestCompletionFinalSaveIsConsistent(t *testing.T) {
	engine, _, saver := newTestEngine(t, []model.Quest{habitQuest()})
	engine.AssignQuest()
	if _, err := engine.AddHabit("run", model.FrequencyDaily, ""); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if _, err := engine.ToggleHabit(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// The last persisted profile reflects the reward, the quest counter, and
	// any level-ups together.
	if saver.lastProfile.QuestsCompleted != 1 {
		t.Fatalf("persisted quests completed = %d, want 1", saver.lastProfile.QuestsCompleted)
	}
	if saver.lastProfile.Experience != HabitXP+30 {
		t.Fatalf("persisted experience = %d, want %d", saver.lastProfile.Experience, HabitXP+30)
	}
}
