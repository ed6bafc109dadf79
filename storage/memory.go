package storage

import (
	"sync"
)

type MemoryStyleStorage struct {
	styles map[int64]string
	mutex  sync.RWMutex
}

func NewMemoryStyleStorage() *MemoryStyleStorage {
	return &MemoryStyleStorage{
		styles: make(map[int64]string),
	}
}

func (m *MemoryStyleStorage) GetUserStyle(userId int64) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.styles[userId], nil
}

func (m *MemoryStyleStorage) SetUserStyle(userId int64, style string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.styles[userId] = style
	return nil
}

func (m *MemoryStyleStorage) Close() error {
	return nil
}
