package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
)

const (
	splitPagesPrefix = "splitted-pages"
	imagesPrefix     = "uploaded-images"
	idImagesPrefix   = "uploaded_id_images"

	pdfContentType = "application/pdf"
)

// workingPrefixes are the namespaces cleanup clears.
var workingPrefixes = []string{splitPagesPrefix, imagesPrefix, idImagesPrefix}

var _ contract.IUploadService = (*UploadService)(nil)

// UploadService splits incoming documents into per-page artifacts and stages
// them in the object store.
type UploadService struct {
	store         contract.IObjectStore
	splitter      contract.IPageSplitter
	validate      *validator.Validate
	log           *slog.Logger
	presignExpiry time.Duration
}

func NewUploadService(
	store contract.IObjectStore,
	splitter contract.IPageSplitter,
	log *slog.Logger,
	presignExpiry time.Duration,
) *UploadService {
	return &UploadService{
		store:         store,
		splitter:      splitter,
		validate:      validator.New(),
		log:           log,
		presignExpiry: presignExpiry,
	}
}

// Stage splits every PDF into single-page artifacts and stages images whole.
// The returned key lists preserve page order even though pages are staged
// concurrently. An unsupported media type aborts before any staging for that
// item; artifacts of items already processed stay staged.
func (s *UploadService) Stage(ctx context.Context, uploads []contract.Upload) ([]contract.DocumentKeys, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files provided", apperrors.ErrInvalidRequest)
	}

	allKeys := make([]contract.DocumentKeys, 0, len(uploads))
	for _, upload := range uploads {
		if err := s.validate.Struct(upload); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrInvalidRequest, upload.FileName, err)
		}

		detected := mimetype.Detect(upload.Data)
		switch {
		case detected.Is(pdfContentType):
			pageKeys, err := s.stagePDF(ctx, upload)
			if err != nil {
				return nil, err
			}
			allKeys = append(allKeys, contract.DocumentKeys{FileName: upload.FileName, PageKeys: pageKeys})
		case strings.HasPrefix(detected.String(), "image/"):
			key := s.imageKey(imagesPrefix, upload.FileName)
			if err := s.store.Put(ctx, key, upload.Data, detected.String()); err != nil {
				return nil, err
			}
			allKeys = append(allKeys, contract.DocumentKeys{FileName: upload.FileName, PageKeys: []string{key}})
		default:
			return nil, fmt.Errorf("%w: %s is %s", apperrors.ErrUnsupportedMediaType, upload.FileName, detected.String())
		}
	}
	return allKeys, nil
}

func (s *UploadService) stagePDF(ctx context.Context, upload contract.Upload) ([]string, error) {
	pageCount, err := s.splitter.PageCount(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("splitting %s: %w", upload.FileName, err)
	}

	// Keys are derived up front so the returned list is in page order no
	// matter which staging goroutine finishes first.
	dirName := uniqueName(upload.FileName)
	keys := make([]string, pageCount)
	for i := range keys {
		keys[i] = fmt.Sprintf("%s/%s/page_%d.pdf", splitPagesPrefix, dirName, i+1)
	}

	errs := make([]error, pageCount)
	var wg sync.WaitGroup
	for i := 0; i < pageCount; i++ {
		wg.Add(1)
		go func(pageIndex int) {
			defer wg.Done()
			page, err := s.splitter.ExtractPage(upload.Data, pageIndex)
			if err != nil {
				errs[pageIndex] = fmt.Errorf("splitting %s page %d: %w", upload.FileName, pageIndex+1, err)
				return
			}
			errs[pageIndex] = s.store.Put(ctx, keys[pageIndex], page, pdfContentType)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	s.log.Info("Document staged", "file", upload.FileName, "pages", pageCount)
	return keys, nil
}

// StageIdentityImage stages a single identity-document photo. Only images
// are accepted on this path.
func (s *UploadService) StageIdentityImage(ctx context.Context, upload contract.Upload) (string, error) {
	if err := s.validate.Struct(upload); err != nil {
		return "", fmt.Errorf("%w: %s: %w", apperrors.ErrInvalidRequest, upload.FileName, err)
	}

	detected := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", fmt.Errorf("%w: %s is %s", apperrors.ErrUnsupportedMediaType, upload.FileName, detected.String())
	}

	key := s.imageKey(idImagesPrefix, upload.FileName)
	if err := s.store.Put(ctx, key, upload.Data, detected.String()); err != nil {
		return "", err
	}
	return key, nil
}

// Cleanup clears every working prefix. Running it twice in a row is fine.
func (s *UploadService) Cleanup(ctx context.Context) error {
	for _, prefix := range workingPrefixes {
		if err := s.store.DeleteAll(ctx, prefix); err != nil {
			return fmt.Errorf("cleaning %s: %w", prefix, err)
		}
	}
	return nil
}

// PresignUpload hands out a direct PUT URL so large documents can bypass the
// service.
func (s *UploadService) PresignUpload(ctx context.Context, key string) (string, error) {
	return s.store.PresignPut(ctx, key, pdfContentType, s.presignExpiry)
}

func (s *UploadService) imageKey(prefix, fileName string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uniqueName(fileName), path.Ext(fileName))
}

// uniqueName keeps the original base name readable while making collisions
// between same-named uploads impossible.
func uniqueName(fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	return fmt.Sprintf("%s_%s", base, uuid.New().String())
}
