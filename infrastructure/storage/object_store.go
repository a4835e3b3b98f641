// Package storage stages binary artifacts in a URL-addressed object store
// (s3:// in production, mem:// in tests).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	_ "github.com/viant/afsc/s3"

	"github.com/choace0427/brightspeed-ai-backend/contract"
)

var _ contract.IObjectStore = (*Store)(nil)

type Store struct {
	fs      afs.Service
	baseURL string
	log     *slog.Logger
	// presigner is nil for schemes without a presign surface (mem, file).
	presigner *S3Presigner
}

func NewStore(baseURL string, presigner *S3Presigner, log *slog.Logger) *Store {
	return &Store{
		fs:        afs.New(),
		baseURL:   baseURL,
		log:       log,
		presigner: presigner,
	}
}

func (s *Store) urlOf(key string) string {
	return url.Join(s.baseURL, key)
}

// Put stages one artifact. Keys are write-once per pipeline run; no
// concurrent writer ever targets the same key.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.fs.Upload(ctx, s.urlOf(key), file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("staging %s: %w", key, err)
	}
	s.log.Debug("Artifact staged", "key", key, "bytes", len(data), "content_type", contentType)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.urlOf(key))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.fs.Delete(ctx, s.urlOf(key)); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// DeleteAll walks the key namespace under prefix and removes every artifact.
// A prefix that holds nothing is not an error, which makes cleanup
// idempotent.
func (s *Store) DeleteAll(ctx context.Context, prefix string) error {
	location := s.urlOf(prefix)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("listing %s: %w", prefix, err)
	}
	if !exists {
		return nil
	}

	objects, err := s.fs.List(ctx, location, option.NewRecursive(true))
	if err != nil {
		return fmt.Errorf("listing %s: %w", prefix, err)
	}
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if err := s.fs.Delete(ctx, object.URL()); err != nil {
			return fmt.Errorf("deleting %s: %w", object.URL(), err)
		}
	}
	// Schemes with real folder nodes keep an empty one behind; drop it too.
	_ = s.fs.Delete(ctx, location)
	s.log.Info("Prefix cleared", "prefix", prefix, "objects", len(objects))
	return nil
}

// PresignPut hands out a time-limited upload URL for direct client puts.
func (s *Store) PresignPut(ctx context.Context, key string, contentType string, expiry time.Duration) (string, error) {
	if s.presigner == nil {
		return "", fmt.Errorf("presigned uploads are not supported by this store")
	}
	return s.presigner.PresignPut(ctx, key, contentType, expiry)
}
