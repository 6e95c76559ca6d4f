package game

import (
	"math/rand"
	"time"

	"github.com/sandeepkv93/habitquest/internal/model"
	"github.com/sandeepkv93/habitquest/internal/state"
)

// Saver persists the whole state. The engine saves after every mutation, so a
// crash at any point loses at most the current action.
type Saver interface {
	Save(tasks []model.Task, habits []model.Habit, profile model.UserProfile) error
}

// Result lists the user-visible events one engine operation produced. The
// controller turns these into status messages and notifications.
type Result struct {
	XPAwarded      int
	LevelsReached  []int
	CompletedQuest *model.Quest
	AssignedQuest  *model.Quest
	SaveErr        error
}

// Engine owns the gamification rules: experience accrual, level-ups, quest
// assignment and completion. It mutates state through the container and
// persists through the saver.
type Engine struct {
	state   *state.Container
	store   Saver
	catalog []model.Quest
	rng     *rand.Rand
	now     func() time.Time
}

type Option func(*Engine)

func WithCatalog(catalog []model.Quest) Option {
	return func(e *Engine) { e.catalog = append([]model.Quest(nil), catalog...) }
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(st *state.Container, store Saver, opts ...Option) *Engine {
	e := &Engine{
		state:   st,
		store:   store,
		catalog: DefaultCatalog(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddTask validates and appends a new task, then persists.
func (e *Engine) AddTask(description, dueDate string) (Result, error) {
	task, err := model.NewTask(description, dueDate)
	if err != nil {
		return Result{}, err
	}
	e.state.AddTask(task)
	var res Result
	e.save(&res)
	return res, nil
}

// AddHabit validates and appends a new habit, then persists.
func (e *Engine) AddHabit(description string, frequency model.Frequency, goal string) (Result, error) {
	habit, err := model.NewHabit(description, frequency, goal)
	if err != nil {
		return Result{}, err
	}
	e.state.AddHabit(habit)
	var res Result
	e.save(&res)
	return res, nil
}

// ToggleTask flips completion for the task at index. Completing a task awards
// experience and re-evaluates the active quest; un-completing only persists.
func (e *Engine) ToggleTask(index int) (Result, error) {
	task, err := e.state.ToggleTask(index)
	if err != nil {
		return Result{}, err
	}
	var res Result
	e.save(&res)
	if task.Completed {
		e.awardExperience(TaskXP, &res)
		e.checkQuestCompletion(&res)
	}
	return res, nil
}

// ToggleHabit flips today's mark for the habit at index. Experience is awarded
// on every toggle, marking or unmarking alike, and the active quest is always
// re-evaluated afterwards; both match the app's long-standing behavior.
func (e *Engine) ToggleHabit(index int) (Result, error) {
	if _, _, err := e.state.ToggleHabit(index, e.now()); err != nil {
		return Result{}, err
	}
	var res Result
	e.save(&res)
	e.awardExperience(HabitXP, &res)
	e.checkQuestCompletion(&res)
	return res, nil
}

// UpdateProfile applies validated name and birth-year edits, then persists.
// A zero birth year clears the field.
func (e *Engine) UpdateProfile(name string, birthYear int) (Result, error) {
	if birthYear != 0 {
		if err := model.ValidateBirthYear(birthYear, e.now()); err != nil {
			return Result{}, err
		}
	}
	e.state.UpdateProfile(func(p *model.UserProfile) {
		p.Name = model.NormalizedName(name)
		p.BirthYear = birthYear
	})
	var res Result
	e.save(&res)
	return res, nil
}

// SetAvatarPath stores the chosen image path. The image itself is never
// decoded here.
func (e *Engine) SetAvatarPath(path string) Result {
	e.state.UpdateProfile(func(p *model.UserProfile) { p.AvatarPath = path })
	var res Result
	e.save(&res)
	return res
}

// AwardExperience adds experience, applies any level-ups, and persists.
func (e *Engine) AwardExperience(amount int) Result {
	var res Result
	e.awardExperience(amount, &res)
	return res
}

// AssignQuest draws a random quest when none is active. It is a no-op while a
// quest is in progress or when the catalog is empty.
func (e *Engine) AssignQuest() Result {
	var res Result
	e.assignQuest(&res)
	return res
}

// CheckQuestCompletion evaluates the active quest against the full task and
// habit lists and completes it when satisfied.
func (e *Engine) CheckQuestCompletion() Result {
	var res Result
	e.checkQuestCompletion(&res)
	return res
}

func (e *Engine) awardExperience(amount int, res *Result) {
	res.XPAwarded += amount
	e.state.UpdateProfile(func(p *model.UserProfile) {
		p.Experience += amount
		// One large award may cross several thresholds; the threshold grows
		// with each level, so it is recomputed every step.
		for p.Experience >= LevelUpThreshold(p.Level) {
			p.Experience -= LevelUpThreshold(p.Level)
			p.Level++
			res.LevelsReached = append(res.LevelsReached, p.Level)
		}
	})
	e.save(res)
}

func (e *Engine) assignQuest(res *Result) {
	if len(e.catalog) == 0 {
		return
	}
	if _, active := e.state.ActiveQuest(); active {
		return
	}
	quest := e.catalog[e.rng.Intn(len(e.catalog))]
	e.state.SetActiveQuest(quest)
	res.AssignedQuest = &quest
}

func (e *Engine) checkQuestCompletion(res *Result) {
	quest, active := e.state.ActiveQuest()
	if !active {
		return
	}
	switch quest.Type {
	case model.QuestCompleteTasks:
		if e.state.CompletedTaskCount() >= quest.Amount {
			e.completeQuest(quest, res)
		}
	case model.QuestCompleteHabits:
		if e.state.AnyHabitDoneOn(e.now()) {
			e.completeQuest(quest, res)
		}
	}
}

// completeQuest awards the reward first (which saves), then bumps the quest
// counter, replaces the active quest, and saves once more so the final write
// sees every field consistent.
func (e *Engine) completeQuest(quest model.Quest, res *Result) {
	res.CompletedQuest = &quest
	e.awardExperience(quest.Reward, res)
	e.state.UpdateProfile(func(p *model.UserProfile) { p.QuestsCompleted++ })
	e.state.ClearActiveQuest()
	e.assignQuest(res)
	e.save(res)
}

func (e *Engine) save(res *Result) {
	if err := e.store.Save(e.state.Tasks(), e.state.Habits(), e.state.Profile()); err != nil {
		res.SaveErr = err
	}
}
