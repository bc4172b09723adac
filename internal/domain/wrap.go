// Package domain contains the core data types for the TechWrapSaga application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, recap).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// WrapYear is the year-in-review covered by this edition of the product.
const WrapYear = 2025

// Wrap is a single user's year-in-review submission.
// At most one wrap exists per user (the repo upserts keyed by user_id).
// The rendering pipeline treats a Wrap as read-only input.
type Wrap struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Year   int       `json:"year"`

	// Name and Title are denormalized from the owning user when a wrap is
	// fetched for display; they are not stored on the wraps table.
	Name  string `json:"name"`
	Title string `json:"title"`

	// Theme is the raw stored theme string. It may be empty or invalid;
	// recap.ResolveVariant normalizes it at render time.
	Theme string `json:"theme"`

	EventsAttended     []string `json:"events_attended"`
	EventsSpokenAt     []string `json:"events_spoken_at"`
	Projects           []string `json:"projects"`
	ToolsLearned       []string `json:"tools_learned"`
	Challenges         []string `json:"challenges"`
	OvercomeChallenges []string `json:"overcome_challenges"`
	Goals2026          []string `json:"goals_2026"`

	// Narrative-only fields. The submission form does not populate these
	// today, but stored records may carry them and the renderer must
	// tolerate them (same omit-if-empty rule as the fields above).
	LessonsLearned []string `json:"lessons_learned,omitempty"`
	GrowthJourney  []string `json:"growth_journey,omitempty"`
	FinalWrap      []string `json:"final_wrap,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
