package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/recap"
	"github.com/Charwekey/TechWrapSaga/internal/repo"
)

// WrapService implements business logic for wrap submissions and reads.
// It holds the user repo as well because saving a wrap may also update the
// submitting user's display title.
type WrapService struct {
	wraps repo.WrapRepo
	users repo.UserRepo
}

// NewWrapService constructs a WrapService backed by the provided repos.
func NewWrapService(wraps repo.WrapRepo, users repo.UserRepo) *WrapService {
	return &WrapService{wraps: wraps, users: users}
}

// SaveInput carries a wrap submission. List fields may be nil.
type SaveInput struct {
	Title              string
	Theme              string
	EventsAttended     []string
	EventsSpokenAt     []string
	Projects           []string
	ToolsLearned       []string
	Challenges         []string
	OvercomeChallenges []string
	Goals2026          []string
}

// Save validates and upserts the wrap for userID (a user has at most one),
// and updates the user's title when one was provided.
// An absent theme defaults to neutral; an unknown theme value is rejected
// with domain.ErrValidation — storage only ever holds the three known values
// or what older writers left behind.
func (s *WrapService) Save(ctx context.Context, userID uuid.UUID, in SaveInput) (domain.Wrap, error) {
	theme := in.Theme
	if theme == "" {
		theme = string(recap.VariantNeutral)
	} else if recap.ResolveVariant(theme) != recap.Variant(theme) {
		return domain.Wrap{}, fmt.Errorf("%w: theme must be one of girly, neutral, hybrid", domain.ErrValidation)
	}

	wrap, err := s.wraps.Upsert(ctx, domain.Wrap{
		UserID:             userID,
		Year:               domain.WrapYear,
		Theme:              theme,
		EventsAttended:     in.EventsAttended,
		EventsSpokenAt:     in.EventsSpokenAt,
		Projects:           in.Projects,
		ToolsLearned:       in.ToolsLearned,
		Challenges:         in.Challenges,
		OvercomeChallenges: in.OvercomeChallenges,
		Goals2026:          in.Goals2026,
	})
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("service.WrapService.Save: %w", err)
	}

	if in.Title != "" {
		if err := s.users.UpdateTitle(ctx, userID, in.Title); err != nil {
			return domain.Wrap{}, fmt.Errorf("service.WrapService.Save: %w", err)
		}
		wrap.Title = in.Title
	}

	return wrap, nil
}

// GetByID returns the wrap for public display, joined with the owner's name
// and title. Returns domain.ErrNotFound when the id does not resolve.
func (s *WrapService) GetByID(ctx context.Context, id uuid.UUID) (domain.Wrap, error) {
	wrap, err := s.wraps.GetByID(ctx, id)
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("service.WrapService.GetByID: %w", err)
	}
	return wrap, nil
}
