package ecap

import "sync/atomic"

// Capacity of a [MessageQueue]. When more messages than this pile up
// between two ticks, the oldest ones are silently dropped.
const queueCapacity = 64

// A fixed-size ring buffer of caption [Message] values.
//
// A queue decouples message delivery from the render tick: transports
// that receive messages on their own goroutine push them here, and the
// display drains the queue at the start of each [Display.Update]() call.
// Pushes are lock-free and safe from any goroutine; draining is meant
// for the single tick goroutine.
//
// Hosts that already deliver messages on the tick goroutine can skip
// the queue entirely and call [Display.ProcessMessage]() directly.
type MessageQueue struct {
	messages [queueCapacity]Message
	head atomic.Uint64 // next position to read
	tail atomic.Uint64 // next position to write
}

// Creates an empty [MessageQueue].
func NewMessageQueue() *MessageQueue {
	return &MessageQueue{}
}

// Adds a message to the queue. If the queue is full, the oldest
// pending message is overwritten.
func (self *MessageQueue) Push(message Message) {
	for {
		currTail := self.tail.Load()
		if !self.tail.CompareAndSwap(currTail, currTail + 1) { continue }
		self.messages[currTail % queueCapacity] = message

		// on overflow, advance the head past the overwritten slot
		// (best effort, concurrent drains recheck on their own)
		currHead := self.head.Load()
		if currTail + 1 - currHead > queueCapacity {
			self.head.CompareAndSwap(currHead, currTail + 1 - queueCapacity)
		}
		return
	}
}

// Removes all pending messages from the queue and returns them in
// arrival order. Returns nil when the queue is empty.
func (self *MessageQueue) Drain() []Message {
	currHead := self.head.Load()
	currTail := self.tail.Load()
	pending := currTail - currHead
	if pending == 0 { return nil }
	if pending > queueCapacity {
		pending  = queueCapacity
		currHead = currTail - queueCapacity
	}

	messages := make([]Message, pending)
	for i := uint64(0); i < pending; i++ {
		messages[i] = self.messages[(currHead + i) % queueCapacity]
	}

	for !self.head.CompareAndSwap(currHead, currTail) {
		currHead = self.head.Load()
		currTail = self.tail.Load()
		if currTail == currHead { break }
	}
	return messages
}

// Returns the number of pending messages at the time of the call.
func (self *MessageQueue) Len() int {
	pending := self.tail.Load() - self.head.Load()
	if pending > queueCapacity { return queueCapacity }
	return int(pending)
}
