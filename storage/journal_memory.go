package storage

import (
	"sync"
	"time"
)

const maxGenerationsPerUser = 50

// MemoryJournalStorage is an in-memory JournalStorage keeping the latest
// entries of every user.
type MemoryJournalStorage struct {
	generations map[int64][]Generation
	mutex       sync.RWMutex
}

func NewMemoryJournalStorage() *MemoryJournalStorage {
	return &MemoryJournalStorage{
		generations: make(map[int64][]Generation),
	}
}

func (m *MemoryJournalStorage) AddGeneration(gen Generation) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}
	list := append(m.generations[gen.UserId], gen)
	if len(list) > maxGenerationsPerUser {
		list = list[len(list)-maxGenerationsPerUser:]
	}
	m.generations[gen.UserId] = list
	return nil
}

func (m *MemoryJournalStorage) GetRecentGenerations(userId int64, limit int) ([]Generation, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	list := m.generations[userId]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	result := make([]Generation, 0, limit)
	for i := len(list) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, list[i])
	}
	return result, nil
}

func (m *MemoryJournalStorage) Close() error {
	return nil
}
