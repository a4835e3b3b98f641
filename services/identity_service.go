package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	"github.com/choace0427/brightspeed-ai-backend/domain/identity"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
	"github.com/choace0427/brightspeed-ai-backend/runtime/backoff"
)

var _ contract.IIdentityService = (*IdentityService)(nil)

// IdentityService checks an identity-document photo against the applicant's
// declared details.
type IdentityService struct {
	backend  contract.IAnalysisBackend
	uploads  contract.IUploadService
	adapter  contract.AdapterConfig
	validate *validator.Validate
	log      *slog.Logger
}

func NewIdentityService(
	backend contract.IAnalysisBackend,
	uploads contract.IUploadService,
	adapter contract.AdapterConfig,
	log *slog.Logger,
) *IdentityService {
	return &IdentityService{
		backend:  backend,
		uploads:  uploads,
		adapter:  adapter,
		validate: validator.New(),
		log:      log,
	}
}

// Check stages the photo, extracts the identity fields synchronously and
// validates them against the expected values.
func (s *IdentityService) Check(ctx context.Context, request contract.IdentityCheckRequest) (identity.Report, error) {
	if err := s.validate.Struct(request); err != nil {
		return identity.Report{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	key, err := s.uploads.StageIdentityImage(ctx, request.Upload)
	if err != nil {
		return identity.Report{}, err
	}

	blocks, err := backoff.Retry(ctx, backoff.DefaultMaxAttempts, backoff.DefaultBaseDelay, apperrors.IsRetryable,
		func() ([]extraction.ResultBlock, error) {
			return s.backend.AnalyzeSync(ctx, key, extraction.IdentityDocumentQueries(), s.adapter)
		})
	if err != nil {
		return identity.Report{}, fmt.Errorf("analyzing %s: %w", key, err)
	}

	report, err := identity.Validate(extraction.FoldBlocks(blocks), identity.Expected{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: request.DateOfBirth,
	})
	if err != nil {
		return identity.Report{}, err
	}
	s.log.Info("Identity check completed", "key", key, "status", report.Status)
	return report, nil
}
