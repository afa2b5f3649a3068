package core

import (
	"sync"
	"time"
)

// Entry is a single log line after message resolution
type Entry struct {
	Time     time.Time
	Level    Level
	ProgName string
	Message  string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.ProgName = ""
	e.Message = ""
	entryPool.Put(e)
}
