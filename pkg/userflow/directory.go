package userflow

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Directory answers whether a username is already registered.
// Implementations may block on an outside system and should honor ctx.
type Directory interface {
	Taken(ctx context.Context, username string) (bool, error)
}

// StaticDirectory is an in-memory Directory. Lookups are case-insensitive.
type StaticDirectory struct {
	mu      sync.RWMutex
	names   map[string]struct{}
	latency time.Duration
}

// NewStaticDirectory returns a directory holding the given usernames.
// A positive latency delays every lookup, standing in for a remote call.
func NewStaticDirectory(latency time.Duration, usernames ...string) *StaticDirectory {
	d := &StaticDirectory{names: make(map[string]struct{}, len(usernames)), latency: latency}
	for _, name := range usernames {
		d.Add(name)
	}
	return d
}

// Add registers a username. Blank names are ignored.
func (d *StaticDirectory) Add(username string) {
	username = normalize(username)
	if username == "" {
		return
	}
	d.mu.Lock()
	d.names[username] = struct{}{}
	d.mu.Unlock()
}

func (d *StaticDirectory) Taken(ctx context.Context, username string) (bool, error) {
	if d.latency > 0 {
		timer := time.NewTimer(d.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.names[normalize(username)]
	return ok, nil
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
