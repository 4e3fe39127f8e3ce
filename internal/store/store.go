// Package store persists lessons. Two implementations exist: a JSON
// file store for single-user CLI use and a Postgres store for the
// server.
package store

import (
	"context"
	"errors"

	"github.com/lox/pokercoach/internal/lessons"
)

// ErrNotFound is returned when a lesson ID does not exist.
var ErrNotFound = errors.New("lesson not found")

// LessonStore is the persistence contract for lessons.
type LessonStore interface {
	// List returns all lessons, newest first.
	List(ctx context.Context) ([]lessons.Lesson, error)

	// Put inserts the given lessons.
	Put(ctx context.Context, items ...lessons.Lesson) error

	// SetActive toggles whether a lesson participates in advice.
	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes a lesson.
	Delete(ctx context.Context, id string) error
}
