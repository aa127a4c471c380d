package messages

import (
	"slices"
	"testing"
	"time"
)

var t0 = time.Unix(1_700_000_000, 0)

func msg(text string, d time.Duration, at time.Time) Message {
	return Message{Text: text, Duration: d, CreatedAt: at}
}

func TestPushEvictsOldest(t *testing.T) {
	q := NewQueue(2)
	q.Push(msg("a", time.Second, t0))
	q.Push(msg("b", time.Second, t0))
	q.Push(msg("c", time.Second, t0))
	if got := q.Texts(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Texts() = %v, want [b c]", got)
	}
	if q.Len() > q.Cap() {
		t.Errorf("Len() = %d exceeds Cap() = %d", q.Len(), q.Cap())
	}
}

func TestPushNeverExceedsCap(t *testing.T) {
	q := NewQueue(2)
	for i := 0; i < 20; i++ {
		q.Push(msg("x", time.Second, t0))
		if q.Len() > 2 {
			t.Fatalf("after %d pushes Len() = %d, want <= 2", i+1, q.Len())
		}
	}
}

func TestPushIfRoom(t *testing.T) {
	q := NewQueue(2)
	if !q.PushIfRoom(msg("a", time.Second, t0)) {
		t.Fatal("PushIfRoom on empty queue = false")
	}
	q.Push(msg("b", time.Second, t0))
	if q.PushIfRoom(msg("c", time.Second, t0)) {
		t.Error("PushIfRoom on full queue = true")
	}
	if got := q.Texts(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Texts() = %v, want [a b]", got)
	}
}

func TestPushDropsEmptyText(t *testing.T) {
	q := NewQueue(2)
	q.Push(msg("", 3*time.Second, t0))
	if q.Len() != 0 {
		t.Errorf("Len() = %d after pushing empty text, want 0", q.Len())
	}
}

func TestReplace(t *testing.T) {
	q := NewQueue(2)
	q.Push(msg("a", time.Second, t0))
	q.Push(msg("b", time.Second, t0))
	q.Replace(msg("only", time.Second, t0))
	if got := q.Texts(); !slices.Equal(got, []string{"only"}) {
		t.Errorf("Texts() = %v, want [only]", got)
	}
}

func TestSweep(t *testing.T) {
	q := NewQueue(2)
	q.Push(msg("short", 1500*time.Millisecond, t0))
	q.Push(msg("long", 3*time.Second, t0))

	if n := q.Sweep(t0.Add(time.Second)); n != 0 {
		t.Errorf("Sweep at 1s removed %d, want 0", n)
	}
	// Age equal to duration counts as expired
	if n := q.Sweep(t0.Add(1500 * time.Millisecond)); n != 1 {
		t.Errorf("Sweep at 1.5s removed %d, want 1", n)
	}
	if got := q.Texts(); !slices.Equal(got, []string{"long"}) {
		t.Errorf("Texts() = %v, want [long]", got)
	}
	q.Sweep(t0.Add(time.Hour))
	if q.Len() != 0 {
		t.Errorf("Len() = %d after sweeping everything, want 0", q.Len())
	}
}

func TestSweepPreservesOrder(t *testing.T) {
	q := NewQueue(3)
	q.Push(msg("a", 5*time.Second, t0))
	q.Push(msg("b", time.Second, t0))
	q.Push(msg("c", 5*time.Second, t0))
	q.Sweep(t0.Add(2 * time.Second))
	if got := q.Texts(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Texts() = %v, want [a c]", got)
	}
}

func TestItemsIsCopy(t *testing.T) {
	q := NewQueue(2)
	q.Push(msg("a", time.Second, t0))
	items := q.Items()
	items[0].Text = "mutated"
	if q.Texts()[0] != "a" {
		t.Error("mutating Items() result changed the queue")
	}
}
