package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/recap/raster"
	"github.com/Charwekey/TechWrapSaga/internal/repo"
)

// ExportService builds export descriptors: the canonical share URL and the
// deterministic image file name for a user's wrap. Pixel capture happens on
// the client, so this service never touches image bytes.
type ExportService struct {
	wraps     repo.WrapRepo
	shareBase string
}

// NewExportService constructs an ExportService. shareBase is the public
// frontend base URL, without a trailing slash.
func NewExportService(wraps repo.WrapRepo, shareBase string) *ExportService {
	return &ExportService{wraps: wraps, shareBase: shareBase}
}

// Descriptor returns the export descriptor for userID's wrap.
// Returns domain.ErrNotFound when the user has no wrap to export.
func (s *ExportService) Descriptor(ctx context.Context, userID uuid.UUID) (domain.ExportDescriptor, error) {
	wrap, err := s.wraps.GetByUserID(ctx, userID)
	if err != nil {
		return domain.ExportDescriptor{}, fmt.Errorf("service.ExportService.Descriptor: %w", err)
	}

	return domain.ExportDescriptor{
		URL:      ShareURL(s.shareBase, wrap.ID),
		FileName: raster.FileName(wrap.Name),
	}, nil
}

// ShareURL builds the canonical shareable URL for a wrap.
func ShareURL(base string, wrapID uuid.UUID) string {
	return fmt.Sprintf("%s/recap/%s", base, wrapID)
}
