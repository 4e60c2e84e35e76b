package manager

import (
	"testing"
	"time"
)

func TestStateManagerFinishOnce(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm := newStateManager(func() time.Time { return clock })

	if sm.Over() || sm.Result() != Running {
		t.Fatalf("new state = %v", sm.Result())
	}
	sm.Tick()
	sm.Tick()

	clock = clock.Add(3 * time.Second)
	sm.Finish(Lost)
	clock = clock.Add(time.Minute)
	sm.Finish(Won)

	if sm.Result() != Lost {
		t.Errorf("Result() = %v, want lost", sm.Result())
	}
	if sm.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", sm.Ticks())
	}
	if sm.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", sm.Elapsed())
	}
}

func TestStateManagerIgnoresRunning(t *testing.T) {
	sm := NewStateManager()
	sm.Finish(Running)
	if sm.Over() {
		t.Error("Finish(Running) ended the game")
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Running, "running"},
		{Won, "won"},
		{Lost, "lost"},
		{Quit, "quit"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}
