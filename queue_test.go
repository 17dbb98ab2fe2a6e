package ecap

import "sync"
import "testing"

func TestMessageQueueFIFO(t *testing.T) {
	queue := NewMessageQueue()
	if messages := queue.Drain(); messages != nil {
		t.Fatalf("expected nil drain on an empty queue, got %d messages", len(messages))
	}

	queue.Push(Message{Text: "a"})
	queue.Push(Message{Text: "b"})
	queue.Push(Message{Text: "c"})
	if queue.Len() != 3 {
		t.Fatalf("expected length 3, got %d", queue.Len())
	}
	messages := queue.Drain()
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Text != "a" || messages[1].Text != "b" || messages[2].Text != "c" {
		t.Fatal("messages drained out of order")
	}
	if queue.Len() != 0 {
		t.Fatalf("expected an empty queue after drain, got length %d", queue.Len())
	}
	if queue.Drain() != nil {
		t.Fatal("expected nil on a second drain")
	}
}

func TestMessageQueueOverflow(t *testing.T) {
	queue := NewMessageQueue()
	for i := 0; i < queueCapacity+8; i++ {
		queue.Push(Message{Width: uint(i)})
	}
	if queue.Len() != queueCapacity {
		t.Fatalf("expected length %d, got %d", queueCapacity, queue.Len())
	}
	messages := queue.Drain()
	if len(messages) != queueCapacity {
		t.Fatalf("expected %d messages, got %d", queueCapacity, len(messages))
	}

	// overflow must drop the oldest messages, not the newest
	if messages[0].Width != 8 {
		t.Fatalf("expected the first drained message to be #8, got #%d", messages[0].Width)
	}
	last := messages[len(messages)-1].Width
	if last != uint(queueCapacity+7) {
		t.Fatalf("expected the last drained message to be #%d, got #%d", queueCapacity+7, last)
	}
}

func TestMessageQueueConcurrentPush(t *testing.T) {
	queue := NewMessageQueue()
	var waitGroup sync.WaitGroup
	for n := 0; n < 4; n++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for i := 0; i < 100; i++ {
				queue.Push(Message{})
			}
		}()
	}
	waitGroup.Wait()
	if messages := queue.Drain(); len(messages) != queueCapacity {
		t.Fatalf("expected a full queue, got %d messages", len(messages))
	}
}
