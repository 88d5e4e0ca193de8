// ABOUTME: Reflection model for the journal slice.
// ABOUTME: Reflections are append-only in practice; newest first.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Reflection is a timestamped journal thought with free-form tags.
type Reflection struct {
	ID      uuid.UUID `json:"id"`
	Date    time.Time `json:"date"`
	Thought string    `json:"thought"`
	Tags    []string  `json:"tags"`
}

// NewReflection creates a reflection stamped now.
func NewReflection(thought string, tags []string) *Reflection {
	if tags == nil {
		tags = []string{}
	}
	return &Reflection{
		ID:      uuid.New(),
		Date:    time.Now(),
		Thought: thought,
		Tags:    tags,
	}
}

// NormalizeReflections repairs a decoded reflection snapshot.
func NormalizeReflections(refs []Reflection) []Reflection {
	if refs == nil {
		return []Reflection{}
	}
	for i := range refs {
		if refs[i].Tags == nil {
			refs[i].Tags = []string{}
		}
	}
	return refs
}
