package cdcl

import "testing"

func TestLitQueue_fifoOrder(t *testing.T) {
	q := newLitQueue(2)
	for i := 1; i <= 5; i++ {
		q.Push(LiteralOf(i))
	}
	if got, want := q.Len(), 5; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i := 1; i <= 5; i++ {
		if got, want := q.Pop(), LiteralOf(i); got != want {
			t.Errorf("Pop() = %v, want %v", got, want)
		}
	}
	if got, want := q.Len(), 0; got != want {
		t.Errorf("Len() after draining = %d, want %d", got, want)
	}
}

func TestLitQueue_growPreservesOrderAcrossWrap(t *testing.T) {
	q := newLitQueue(2) // capacity 2
	q.Push(LiteralOf(1))
	q.Push(LiteralOf(2))
	q.Pop() // start wraps to 1, size 1
	q.Push(LiteralOf(3))
	q.Push(LiteralOf(4)) // triggers grow while start != 0

	want := []LitID{LiteralOf(2), LiteralOf(3), LiteralOf(4)}
	for _, w := range want {
		if got := q.Pop(); got != w {
			t.Errorf("Pop() = %v, want %v", got, w)
		}
	}
}

func TestLitQueue_popEmpty_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Pop on an empty queue: want panic, got none")
		}
	}()
	newLitQueue(1).Pop()
}

func TestLitQueue_clear(t *testing.T) {
	q := newLitQueue(4)
	q.Push(LiteralOf(1))
	q.Clear()
	if got, want := q.Len(), 0; got != want {
		t.Fatalf("Len() after Clear = %d, want %d", got, want)
	}
	q.Push(LiteralOf(2))
	if got, want := q.Pop(), LiteralOf(2); got != want {
		t.Errorf("Pop() = %v, want %v", got, want)
	}
}
