// Package daemon runs the watch mode: a timer loop that fires once a
// day at the configured brief send time.
package daemon

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

var ErrInvalidFireTime = errors.New("daemon: invalid fire time")

// Fire is one brief trigger: At is when the alarm goes off, PlanDate
// the day the brief should plan.
type Fire struct {
	At       time.Time
	PlanDate time.Time
}

// Alarm emits scheduled fires on a channel. The watch loop schedules
// the next day's fire each time one is delivered.
type Alarm struct {
	mu      sync.Mutex
	pending []Fire
	out     chan Fire
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewAlarm(bufferSize int) *Alarm {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Alarm{
		out:    make(chan Fire, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (a *Alarm) C() <-chan Fire {
	return a.out
}

func (a *Alarm) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true
	go a.loop()
}

func (a *Alarm) Stop() {
	a.mu.Lock()
	if !a.started || a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	close(a.stopCh)
	a.mu.Unlock()
	<-a.doneCh
}

func (a *Alarm) Schedule(f Fire) error {
	if f.At.IsZero() {
		return ErrInvalidFireTime
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return errors.New("daemon: alarm stopped")
	}
	a.pending = append(a.pending, f)
	a.signalWakeup()
	return nil
}

// Dropped counts fires discarded because the consumer fell behind.
func (a *Alarm) Dropped() uint64 {
	return atomic.LoadUint64(&a.dropped)
}

func (a *Alarm) loop() {
	defer close(a.doneCh)
	defer close(a.out)

	var timer *time.Timer
	for {
		next, hasNext := a.peek()
		if !hasNext {
			select {
			case <-a.wakeup:
				continue
			case <-a.stopCh:
				return
			}
		}

		wait := time.Until(next.At)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, f := range a.popDue(time.Now().UTC()) {
				select {
				case a.out <- f:
				default:
					atomic.AddUint64(&a.dropped, 1)
				}
			}
		case <-a.wakeup:
			continue
		case <-a.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (a *Alarm) signalWakeup() {
	select {
	case a.wakeup <- struct{}{}:
	default:
	}
}

func (a *Alarm) peek() (Fire, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	idx := a.earliest()
	if idx < 0 {
		return Fire{}, false
	}
	return a.pending[idx], true
}

func (a *Alarm) popDue(now time.Time) []Fire {
	a.mu.Lock()
	defer a.mu.Unlock()

	due := make([]Fire, 0, len(a.pending))
	rest := a.pending[:0]
	for _, f := range a.pending {
		if f.At.After(now) {
			rest = append(rest, f)
		} else {
			due = append(due, f)
		}
	}
	a.pending = rest
	return due
}

// earliest returns the index of the soonest pending fire, -1 if none.
func (a *Alarm) earliest() int {
	idx := -1
	for i, f := range a.pending {
		if idx < 0 || f.At.Before(a.pending[idx].At) {
			idx = i
		}
	}
	return idx
}

// NextSendTime is the next instant the daily brief should go out:
// today at sendAt if that is still ahead, otherwise tomorrow.
func NextSendTime(now time.Time, sendAt model.TimeOfDay) time.Time {
	next := sendAt.At(now.UTC())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PlanDateFor resolves which day a fire plans: the fire day plus the
// configured offset. Offset 0 plans the day the brief is sent.
func PlanDateFor(fireAt time.Time, offsetDays int) time.Time {
	utc := fireAt.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, offsetDays)
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
