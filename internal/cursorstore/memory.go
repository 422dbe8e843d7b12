package cursorstore

import (
	"container/list"
	"context"
	"maps"
	"sync"
)

const defaultCapacity = 10_000

// Memory holds at most capacity cursors; the oldest is evicted first.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front is oldest
}

type memItem struct {
	id    string
	entry Entry
}

func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Memory{capacity: capacity, entries: make(map[string]*list.Element), order: list.New()}
}

func (m *Memory) Put(_ context.Context, e Entry) (string, error) {
	stamp(&e)
	e.Cursor.Next = maps.Clone(e.Cursor.Next)
	id := newID()

	m.mu.Lock()
	defer m.mu.Unlock()
	for m.order.Len() >= m.capacity {
		oldest := m.order.Front()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memItem).id)
	}
	m.entries[id] = m.order.PushBack(&memItem{id: id, entry: e})
	return id, nil
}

func (m *Memory) Get(_ context.Context, id string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	e := el.Value.(*memItem).entry
	e.Cursor.Next = maps.Clone(e.Cursor.Next)
	return e, nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memory) Close() error { return nil }
