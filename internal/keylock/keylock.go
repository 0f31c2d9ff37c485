// Package keylock provides mutual exclusion per key.
package keylock

import (
	"context"
	"sync"
)

type entry struct {
	ch   chan struct{}
	refs int
}

// KeyLock serialises holders of the same key. Entries are dropped once no
// goroutine holds or waits for them.
type KeyLock[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*entry
}

func New[K comparable]() *KeyLock[K] {
	return &KeyLock[K]{locks: make(map[K]*entry)}
}

// Lock blocks until key is free or ctx is done. The returned func releases the key.
func (l *KeyLock[K]) Lock(ctx context.Context, key K) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
	}, nil
}

func (l *KeyLock[K]) release(key K, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *KeyLock[K]) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
