package dao

import (
	"sync"
	"time"
)

// idSequence hands out millisecond-timestamp ids that are strictly
// increasing even when the wall clock does not advance between calls.
type idSequence struct {
	mu   sync.Mutex
	last uint64
}

func (s *idSequence) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uint64(time.Now().UnixMilli())
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// seed raises the floor so ids never collide with rows already persisted.
func (s *idSequence) seed(last uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if last > s.last {
		s.last = last
	}
}
