package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns a new task id for a task created at now
type IDGenerator func(now time.Time) string

// NewTaskID returns a random UUID, or a time-plus-random id if the system
// random source fails.
func NewTaskID(now time.Time) string {
	id, err := uuid.NewRandom()
	if err != nil {
		return FallbackTaskID(now)
	}
	return id.String()
}

// FallbackTaskID builds an id of the form todo-<unix ms>-<hex>
func FallbackTaskID(now time.Time) string {
	return fmt.Sprintf("todo-%d-%x", now.UnixMilli(), rand.Uint64())
}
