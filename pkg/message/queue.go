package message

// Queue hands out the runes of a message front to back. Consumed runes are
// never revisited.
type Queue struct {
	runes []rune
	pos   int
}

// NewQueue returns a queue over msg.
func NewQueue(msg string) *Queue {
	return &Queue{runes: []rune(msg)}
}

// Len returns the number of runes not yet consumed.
func (q *Queue) Len() int {
	return len(q.runes) - q.pos
}

// Empty reports whether every rune has been consumed.
func (q *Queue) Empty() bool {
	return q.pos >= len(q.runes)
}

// Peek returns the next rune without consuming it.
func (q *Queue) Peek() (rune, bool) {
	if q.Empty() {
		return 0, false
	}
	return q.runes[q.pos], true
}

// Pop consumes and returns the next rune.
func (q *Queue) Pop() (rune, bool) {
	r, ok := q.Peek()
	if ok {
		q.pos++
	}
	return r, ok
}

// Drain consumes and returns everything left.
func (q *Queue) Drain() string {
	if q.Empty() {
		return ""
	}
	s := string(q.runes[q.pos:])
	q.pos = len(q.runes)
	return s
}
