package concurrency

import (
	"fmt"
	"slices"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockAll acquires every key in sorted order and returns the release func.
// Sorting keeps two callers that share keys from deadlocking.
func (lm *LockManager) LockAll(keys ...string) (unlock func()) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		mu := lm.GetLock(key)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// CharacterKey names the lock that serialises one character's mutations
func CharacterKey(characterID int64) string {
	return fmt.Sprintf("character:%d", characterID)
}

// ContainerKey names the lock of a container shared between characters
func ContainerKey(containerID int64) string {
	return fmt.Sprintf("container:%d", containerID)
}
