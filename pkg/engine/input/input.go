// Package input turns device events into the handful of keys the game understands.
package input

import (
	"sync"

	"github.com/zyedidia/generic/queue"
)

const escByte = 0x1b

// DecodeTerminal splits a chunk of bytes read from a raw-mode terminal into raw codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC is "escape".
func DecodeTerminal(buf []byte) []string {
	var codes []string

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		switch {
		case b == escByte:
			if i+1 >= len(buf) || (buf[i+1] != '[' && buf[i+1] != 'O') {
				codes = append(codes, "escape")
				continue
			}
			// Skip to the final byte of the sequence
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j >= len(buf) {
				return codes
			}
			switch buf[j] {
			case 'A':
				codes = append(codes, "arrow_up")
			case 'B':
				codes = append(codes, "arrow_down")
			case 'C':
				codes = append(codes, "arrow_right")
			case 'D':
				codes = append(codes, "arrow_left")
			}
			// Unknown escape sequence - discard it
			i = j
		case b == 3:
			codes = append(codes, "ctrl_c")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b >= 32 && b < 127:
			codes = append(codes, string(rune(b)))
		}
	}

	return codes
}

// Pending is a bounded FIFO of keys shared between an input goroutine and the frame loop.
// The frame loop takes at most one key per frame, so a full queue sheds its
// oldest key and a burst of presses keeps only the most recent ones.
type Pending struct {
	mu    sync.Mutex
	keys  *queue.Queue[Key]
	size  int
	limit int
}

// NewPending creates a queue holding at most limit keys. A limit of 0 means unbounded.
func NewPending(limit int) *Pending {
	return &Pending{keys: queue.New[Key](), limit: limit}
}

// Push enqueues a key. KeyNone is ignored.
func (p *Pending) Push(k Key) {
	if k == KeyNone {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limit > 0 && p.size >= p.limit {
		p.keys.Dequeue()
		p.size--
	}
	p.keys.Enqueue(k)
	p.size++
}

// Pop removes the oldest key, if any.
func (p *Pending) Pop() (Key, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.keys.Empty() {
		return KeyNone, false
	}
	p.size--
	return p.keys.Dequeue(), true
}

// Len returns the number of waiting keys.
func (p *Pending) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size
}
