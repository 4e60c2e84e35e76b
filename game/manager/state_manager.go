package manager

import "time"

// Result is where a game stands
type Result int

const (
	Running Result = iota
	Won
	Lost
	Quit
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "running"
	}
}

// StateManager tracks the terminal state of a game and how long it ran.
type StateManager struct {
	result    Result
	ticks     int
	startTime time.Time
	endTime   time.Time
	now       func() time.Time
}

func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		result:    Running,
		startTime: now(),
		now:       now,
	}
}

// Tick counts one successful simulation step
func (sm *StateManager) Tick() {
	sm.ticks++
}

// Finish records the terminal result. Only the first call has an effect.
func (sm *StateManager) Finish(r Result) {
	if sm.result != Running || r == Running {
		return
	}
	sm.result = r
	sm.endTime = sm.now()
}

func (sm *StateManager) Result() Result {
	return sm.result
}

func (sm *StateManager) Over() bool {
	return sm.result != Running
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

// Elapsed returns the play time, frozen once the game is over.
func (sm *StateManager) Elapsed() time.Duration {
	if sm.Over() {
		return sm.endTime.Sub(sm.startTime)
	}
	return sm.now().Sub(sm.startTime)
}
