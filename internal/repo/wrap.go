package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
)

// WrapRepo defines the persistence operations for Wraps.
type WrapRepo interface {
	// Upsert creates the wrap for its user, or overwrites the existing one —
	// a user has at most one wrap. Returns the persisted record.
	Upsert(ctx context.Context, wrap domain.Wrap) (domain.Wrap, error)

	// GetByID retrieves a wrap by primary key, joined with the owning user's
	// name and title for display. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Wrap, error)

	// GetByUserID retrieves the single wrap owned by userID.
	// Returns domain.ErrNotFound if the user has not submitted one.
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Wrap, error)
}

// pgWrapRepo is the Postgres implementation of WrapRepo.
type pgWrapRepo struct {
	db db
}

// NewWrapRepo constructs a WrapRepo backed by the provided db connection.
func NewWrapRepo(db db) WrapRepo {
	return &pgWrapRepo{db: db}
}

// wrapColumns selects wrap fields joined with the owner's display fields.
// The tools_learnt column name is a historical quirk of the production
// schema; the domain field is ToolsLearned.
const wrapColumns = `
	w.id, w.user_id, w.year,
	w.events_attended, w.events_spoken_at, w.projects, w.tools_learnt,
	w.challenges, w.overcome_challenges, w.goals_2026,
	w.lessons_learned, w.growth_journey, w.final_wrap,
	w.theme, w.created_at, w.updated_at,
	u.name, u.title`

func (r *pgWrapRepo) Upsert(ctx context.Context, wrap domain.Wrap) (domain.Wrap, error) {
	const q = `
		WITH upserted AS (
			INSERT INTO wraps (
				user_id, year,
				events_attended, events_spoken_at, projects, tools_learnt,
				challenges, overcome_challenges, goals_2026,
				lessons_learned, growth_journey, final_wrap, theme
			)
			VALUES (
				@user_id, @year,
				@events_attended, @events_spoken_at, @projects, @tools_learnt,
				@challenges, @overcome_challenges, @goals_2026,
				@lessons_learned, @growth_journey, @final_wrap, @theme
			)
			ON CONFLICT (user_id) DO UPDATE SET
				events_attended     = EXCLUDED.events_attended,
				events_spoken_at    = EXCLUDED.events_spoken_at,
				projects            = EXCLUDED.projects,
				tools_learnt        = EXCLUDED.tools_learnt,
				challenges          = EXCLUDED.challenges,
				overcome_challenges = EXCLUDED.overcome_challenges,
				goals_2026          = EXCLUDED.goals_2026,
				lessons_learned     = EXCLUDED.lessons_learned,
				growth_journey      = EXCLUDED.growth_journey,
				final_wrap          = EXCLUDED.final_wrap,
				theme               = EXCLUDED.theme,
				updated_at          = now()
			RETURNING *
		)
		SELECT ` + wrapColumns + `
		FROM upserted w
		JOIN users u ON u.id = w.user_id`

	args := pgx.NamedArgs{
		"user_id":             wrap.UserID,
		"year":                wrap.Year,
		"events_attended":     emptyIfNil(wrap.EventsAttended),
		"events_spoken_at":    emptyIfNil(wrap.EventsSpokenAt),
		"projects":            emptyIfNil(wrap.Projects),
		"tools_learnt":        emptyIfNil(wrap.ToolsLearned),
		"challenges":          emptyIfNil(wrap.Challenges),
		"overcome_challenges": emptyIfNil(wrap.OvercomeChallenges),
		"goals_2026":          emptyIfNil(wrap.Goals2026),
		"lessons_learned":     emptyIfNil(wrap.LessonsLearned),
		"growth_journey":      emptyIfNil(wrap.GrowthJourney),
		"final_wrap":          emptyIfNil(wrap.FinalWrap),
		"theme":               wrap.Theme,
	}

	result, err := scanWrap(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("repo.WrapRepo.Upsert: %w", err)
	}
	return result, nil
}

func (r *pgWrapRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Wrap, error) {
	const q = `
		SELECT ` + wrapColumns + `
		FROM wraps w
		JOIN users u ON u.id = w.user_id
		WHERE w.id = @id`

	result, err := scanWrap(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("repo.WrapRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgWrapRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Wrap, error) {
	const q = `
		SELECT ` + wrapColumns + `
		FROM wraps w
		JOIN users u ON u.id = w.user_id
		WHERE w.user_id = @user_id`

	result, err := scanWrap(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("repo.WrapRepo.GetByUserID: %w", err)
	}
	return result, nil
}

// emptyIfNil keeps list columns NOT NULL: a nil slice inserts as '{}'.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// scanWrap maps a single joined database row into a domain.Wrap.
func scanWrap(s scanner) (domain.Wrap, error) {
	var (
		w      domain.Wrap
		id     pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(
		&id, &userID, &w.Year,
		&w.EventsAttended, &w.EventsSpokenAt, &w.Projects, &w.ToolsLearned,
		&w.Challenges, &w.OvercomeChallenges, &w.Goals2026,
		&w.LessonsLearned, &w.GrowthJourney, &w.FinalWrap,
		&w.Theme, &w.CreatedAt, &w.UpdatedAt,
		&w.Name, &w.Title,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Wrap{}, domain.ErrNotFound
		}
		return domain.Wrap{}, err
	}

	w.ID = uuid.UUID(id.Bytes)
	w.UserID = uuid.UUID(userID.Bytes)
	return w, nil
}
