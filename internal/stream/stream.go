// Package stream provides a minimal typed observer/publisher abstraction:
// a value holder that replays its latest value to new subscribers, and a
// combinator that recomputes a derived value whenever any of a fixed set of
// upstream sources emits.
//
// Everything here runs on the event loop: emissions notify subscribers
// synchronously, in subscription order, before Set returns. There is no
// internal locking; sources must not be shared across goroutines.
package stream

// Notifier is the upstream face of a derived computation: a source whose
// changes can be observed without caring about its value type.
type Notifier interface {
	// OnChange registers fn to run after every emission. It does not replay
	// the current value. The returned function cancels the registration.
	OnChange(fn func()) (cancel func())
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Source holds a current value and notifies subscribers on every Set.
type Source[T any] struct {
	value  T
	subs   []subscriber[T]
	nextID int
}

// NewSource creates a source seeded with an initial value. The initial value
// is not emitted; subscribers receive it via replay on Subscribe.
func NewSource[T any](initial T) *Source[T] {
	return &Source[T]{value: initial}
}

// Get returns the latest value.
func (s *Source[T]) Get() T {
	return s.value
}

// Set stores a new value and synchronously notifies all current subscribers
// in subscription order before returning.
func (s *Source[T]) Set(v T) {
	s.value = v

	// Iterate over a copy so a subscriber may unsubscribe during delivery.
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn and immediately replays the latest value to it.
// The returned function cancels the subscription.
func (s *Source[T]) Subscribe(fn func(T)) (cancel func()) {
	cancel = s.add(fn)
	fn(s.value)
	return cancel
}

// OnChange registers fn to run after each emission without replaying the
// current value. It makes Source satisfy Notifier.
func (s *Source[T]) OnChange(fn func()) (cancel func()) {
	return s.add(func(T) { fn() })
}

func (s *Source[T]) add(fn func(T)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Derived is a source whose value is recomputed from upstream sources:
// exactly one recomputation per upstream emission.
type Derived[T any] struct {
	*Source[T]
	compute func() T
	cancels []func()
}

// Derive computes an initial value and recomputes it whenever any upstream
// notifier emits. Close tears the upstream registrations down.
func Derive[T any](compute func() T, upstream ...Notifier) *Derived[T] {
	d := &Derived[T]{
		Source:  NewSource(compute()),
		compute: compute,
	}
	for _, u := range upstream {
		d.cancels = append(d.cancels, u.OnChange(d.recompute))
	}
	return d
}

func (d *Derived[T]) recompute() {
	d.Set(d.compute())
}

// Invalidate forces a recomputation outside of an upstream emission.
func (d *Derived[T]) Invalidate() {
	d.recompute()
}

// Close cancels all upstream registrations. The latest value remains
// readable but will no longer change.
func (d *Derived[T]) Close() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
}
