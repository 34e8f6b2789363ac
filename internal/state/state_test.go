package state

import (
	"testing"
	"time"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(time.Minute)

	if _, ok := m.Get(1); ok {
		t.Fatal("未開始的對話不應存在")
	}

	m.Begin(1, Clearing{Action: ClearPersonal, Step: StepAwaitingDate, GroupID: -100})
	st, ok := m.Get(1)
	if !ok || st.Action != ClearPersonal || st.Step != StepAwaitingDate {
		t.Fatalf("Get = %+v, %v", st, ok)
	}

	st.Step = StepAwaitingConfirmation
	st.DateInput = "6/12"
	m.Advance(1, st)
	st, ok = m.Get(1)
	if !ok || st.Step != StepAwaitingConfirmation || st.DateInput != "6/12" {
		t.Fatalf("Advance 後 Get = %+v, %v", st, ok)
	}

	m.End(1)
	if _, ok := m.Get(1); ok {
		t.Fatal("End 後對話仍存在")
	}
}

func TestManagerPerUser(t *testing.T) {
	m := NewManager(time.Minute)
	m.Begin(1, Clearing{Action: ClearPersonal, Step: StepAwaitingDate})
	m.Begin(2, Clearing{Action: ClearGroup, Step: StepAwaitingDate})

	st1, _ := m.Get(1)
	st2, _ := m.Get(2)
	if st1.Action != ClearPersonal || st2.Action != ClearGroup {
		t.Errorf("用戶狀態互相污染: %+v %+v", st1, st2)
	}
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	m.Begin(1, Clearing{Action: ClearFleet, Step: StepAwaitingDate})
	time.Sleep(30 * time.Millisecond)
	if _, ok := m.Get(1); ok {
		t.Fatal("過期對話仍可取得")
	}
}

func TestActionName(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ClearPersonal, "個人報表"},
		{ClearGroup, "組別報表"},
		{ClearFleet, "車隊總表"},
		{Action("unknown"), "報表"},
	}
	for _, tt := range tests {
		if got := tt.a.Name(); got != tt.want {
			t.Errorf("%q.Name() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
