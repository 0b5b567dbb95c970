package manager

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
)

// ScoreSaver is the part of a score store that AsyncStore defers.
type ScoreSaver interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// AsyncStore moves best-score writes off the frame loop. Saves are queued
// and written by a background goroutine; when the queue is full the oldest
// queued score is dropped, since later best scores supersede it. Loads go
// straight to the wrapped store.
type AsyncStore struct {
	store  ScoreSaver
	saves  chan int
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewAsyncStore(store ScoreSaver) *AsyncStore {
	a := &AsyncStore{
		store: store,
		saves: make(chan int, 8),
	}
	a.wg.Add(1)
	go a.writeLoop()
	return a
}

func (a *AsyncStore) LoadBestScore() (int, error) {
	return a.store.LoadBestScore()
}

// SaveBestScore never blocks and always returns nil; write failures are
// logged by the background writer.
func (a *AsyncStore) SaveBestScore(score int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}

	select {
	case a.saves <- score:
		return nil
	default:
	}

	// This is the only sender and it holds mu, so once the oldest entry is
	// gone (taken here or by the writer) the send cannot block.
	select {
	case old := <-a.saves:
		log.Printf("[Store] save queue full, dropping best score %d", old)
	default:
	}
	a.saves <- score
	return nil
}

// Close waits for queued saves to be written, then closes the wrapped store
// if it holds resources.
func (a *AsyncStore) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.saves)
	a.mu.Unlock()

	a.wg.Wait()
	if c, ok := a.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (a *AsyncStore) writeLoop() {
	defer a.wg.Done()
	for score := range a.saves {
		if err := a.store.SaveBestScore(score); err != nil {
			log.Printf("[Store] could not save best score %d: %v", score, err)
		}
	}
}

// OpenScoreStore builds the best-score store named by kind ("json" or
// "sqlite") under dir, wrapped so saves never block the caller.
func OpenScoreStore(kind, dir string) (*AsyncStore, error) {
	switch kind {
	case "json":
		return NewAsyncStore(NewStateManager(filepath.Join(dir, ScoreFile))), nil
	case "sqlite":
		db, err := OpenSQLiteStore(filepath.Join(dir, DBFile))
		if err != nil {
			return nil, err
		}
		return NewAsyncStore(db), nil
	default:
		return nil, fmt.Errorf("unknown score store %q", kind)
	}
}
