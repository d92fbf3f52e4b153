package canvas

import (
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := newQueue()
	q.push(message{kind: msgUpdate, id: "a"})
	q.push(message{kind: msgAppend, id: "b"})
	q.push(message{kind: msgClear, id: "c"})

	for _, want := range []string{"a", "b", "c"} {
		m, ok := q.tryPop()
		if !ok {
			t.Fatal("queue exhausted early")
		}
		if m.id != want {
			t.Errorf("got %q, want %q", m.id, want)
		}
	}
	if _, ok := q.tryPop(); ok {
		t.Error("tryPop on empty queue should report false")
	}
}

func TestQueueBlockingPop(t *testing.T) {
	q := newQueue()
	got := make(chan message, 1)

	go func() {
		got <- q.pop()
	}()

	// Give the consumer a moment to block.
	time.Sleep(10 * time.Millisecond)
	q.push(message{kind: msgRender, id: "x"})

	select {
	case m := <-got:
		if m.id != "x" {
			t.Errorf("popped %q, want %q", m.id, "x")
		}
	case <-time.After(time.Second):
		t.Fatal("pop did not wake on push")
	}
}

func TestQueueLen(t *testing.T) {
	q := newQueue()
	if q.len() != 0 {
		t.Errorf("len = %d, want 0", q.len())
	}
	q.push(message{})
	q.push(message{})
	if q.len() != 2 {
		t.Errorf("len = %d, want 2", q.len())
	}
}

func TestMessageKindString(t *testing.T) {
	kinds := map[msgKind]string{
		msgUpdate: "update",
		msgAppend: "append",
		msgClear:  "clear",
		msgRender: "render",
		msgDelete: "delete",
		msgStop:   "stop",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
