package daemon

import (
	"testing"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

func TestAlarmFiresInOrder(t *testing.T) {
	alarm := NewAlarm(8)
	alarm.Start()
	defer alarm.Stop()

	now := time.Now().UTC()
	later := Fire{At: now.Add(80 * time.Millisecond), PlanDate: now.AddDate(0, 0, 2)}
	sooner := Fire{At: now.Add(20 * time.Millisecond), PlanDate: now.AddDate(0, 0, 1)}
	if err := alarm.Schedule(later); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := alarm.Schedule(sooner); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitFire(t, alarm.C(), time.Second)
	second := waitFire(t, alarm.C(), time.Second)
	if !first.At.Equal(sooner.At) || !second.At.Equal(later.At) {
		t.Fatalf("unexpected order: first=%v second=%v", first.At, second.At)
	}
}

func TestAlarmDropsWhenConsumerIsSlow(t *testing.T) {
	alarm := NewAlarm(1)
	alarm.Start()
	defer alarm.Stop()

	at := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := alarm.Schedule(Fire{At: at}); err != nil {
			t.Fatalf("schedule fire: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if alarm.Dropped() == 0 {
		t.Fatalf("expected dropped fires > 0, got %d", alarm.Dropped())
	}
}

func TestScheduleValidatesFireTime(t *testing.T) {
	alarm := NewAlarm(1)
	if err := alarm.Schedule(Fire{}); err != ErrInvalidFireTime {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}

func TestNextSendTime(t *testing.T) {
	sendAt := model.NewTimeOfDay(6, 0)

	early := time.Date(2026, 3, 16, 5, 0, 0, 0, time.UTC)
	if got := NextSendTime(early, sendAt); !got.Equal(time.Date(2026, 3, 16, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("before send time: got %v", got)
	}

	late := time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)
	if got := NextSendTime(late, sendAt); !got.Equal(time.Date(2026, 3, 17, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("after send time: got %v", got)
	}

	exact := time.Date(2026, 3, 16, 6, 0, 0, 0, time.UTC)
	if got := NextSendTime(exact, sendAt); !got.Equal(time.Date(2026, 3, 17, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("at send time: got %v", got)
	}
}

func TestPlanDateFor(t *testing.T) {
	fire := time.Date(2026, 3, 16, 6, 0, 0, 0, time.UTC)
	if got := PlanDateFor(fire, 1); !got.Equal(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("offset 1: got %v", got)
	}
	if got := PlanDateFor(fire, 0); !got.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("offset 0: got %v", got)
	}
}

func waitFire(t *testing.T, ch <-chan Fire, timeout time.Duration) Fire {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for fire")
		return Fire{}
	}
}
