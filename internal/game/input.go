package game

import "github.com/diegok/pixlob/internal/protocol"

// InputQueue buffers commands between ticks.
// Not safe for concurrent use; push and drain from the loop goroutine.
type InputQueue struct {
	cmds []protocol.Command
}

// NewInputQueue creates an empty queue
func NewInputQueue() *InputQueue {
	return &InputQueue{cmds: make([]protocol.Command, 0, 8)}
}

// Push appends a command; CmdNone is dropped
func (q *InputQueue) Push(cmd protocol.Command) {
	if cmd == protocol.CmdNone {
		return
	}
	q.cmds = append(q.cmds, cmd)
}

// Len returns the number of pending commands
func (q *InputQueue) Len() int {
	return len(q.cmds)
}

// Drain returns pending commands in arrival order and empties the queue
func (q *InputQueue) Drain() []protocol.Command {
	if len(q.cmds) == 0 {
		return nil
	}
	out := q.cmds
	q.cmds = make([]protocol.Command, 0, cap(out))
	return out
}
