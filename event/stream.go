package event

// Stream is one typed topic of a Channel. Handlers run synchronously on the
// publishing goroutine in the order they subscribed.
type Stream[T any] struct {
	owner *Channel
	subs  []*subscriber[T]
}

type subscriber[T any] struct {
	fn     func(T)
	active bool
}

func newStream[T any](owner *Channel) *Stream[T] {
	return &Stream[T]{owner: owner}
}

// Subscribe registers fn and returns a function that removes it again.
// Subscribing to a closed channel returns a no-op unsubscribe.
func (s *Stream[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if s == nil || fn == nil || s.owner.Closed() {
		return func() {}
	}
	sub := &subscriber[T]{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		s.remove(sub)
	}
}

// Publish delivers v to every handler subscribed at the time of the call.
// Handlers removed while the publish is in flight are skipped; handlers
// added during it first see the next publish.
func (s *Stream[T]) Publish(v T) {
	if s == nil || s.owner.Closed() || len(s.subs) == 0 {
		return
	}
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if !sub.active || s.owner.Closed() {
			continue
		}
		sub.fn(v)
	}
}

// Len returns the number of live subscribers.
func (s *Stream[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.subs)
}

func (s *Stream[T]) remove(target *subscriber[T]) {
	out := s.subs[:0]
	for _, sub := range s.subs {
		if sub != target {
			out = append(out, sub)
		}
	}
	for i := len(out); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = out
}

func (s *Stream[T]) reset() {
	for _, sub := range s.subs {
		sub.active = false
	}
	s.subs = nil
}
