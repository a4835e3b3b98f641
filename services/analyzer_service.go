package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
	"github.com/choace0427/brightspeed-ai-backend/runtime/backoff"
)

// maxQueriesPerRequest is the backend's hard cap on queries in a single
// analysis call; larger sets are chunked.
const maxQueriesPerRequest = 15

// AnalyzerConfig tunes batch pacing and the finance analysis path.
type AnalyzerConfig struct {
	// StaggerDelay spaces out job submissions within one document so a
	// many-page upload does not hit the backend all at once.
	StaggerDelay     time.Duration
	FinanceAdapter   contract.AdapterConfig
	MaxRetryAttempts int
	RetryBaseDelay   time.Duration
}

var _ contract.IAnalyzerService = (*AnalyzerService)(nil)

// AnalyzerService runs document-analysis jobs over staged page artifacts and
// reconciles their answers into best-answer-per-field maps.
type AnalyzerService struct {
	backend contract.IAnalysisBackend
	poller  contract.IJobPoller
	log     *slog.Logger
	conf    AnalyzerConfig
}

func NewAnalyzerService(
	backend contract.IAnalysisBackend,
	poller contract.IJobPoller,
	log *slog.Logger,
	conf AnalyzerConfig,
) *AnalyzerService {
	if conf.MaxRetryAttempts <= 0 {
		conf.MaxRetryAttempts = backoff.DefaultMaxAttempts
	}
	if conf.RetryBaseDelay <= 0 {
		conf.RetryBaseDelay = backoff.DefaultBaseDelay
	}
	return &AnalyzerService{backend: backend, poller: poller, log: log, conf: conf}
}

// ProcessBatch analyzes every document of the request concurrently. A failing
// document reports its error in its own slot and never disturbs its siblings,
// so the result slice always matches the request's documents one-to-one, in
// order.
func (s *AnalyzerService) ProcessBatch(ctx context.Context, request contract.AnalyzeRequest) []contract.DocumentResult {
	queries := request.Queries
	if len(queries) == 0 {
		queries = extraction.IdentityDocumentQueries()
	}
	adapter := contract.AdapterConfig{ID: request.AdapterID, Version: request.AdapterVersion}

	results := make([]contract.DocumentResult, len(request.Documents))
	var wg sync.WaitGroup
	for i, document := range request.Documents {
		wg.Add(1)
		go func(i int, document contract.DocumentKeys) {
			defer wg.Done()
			fields, err := s.processDocument(ctx, document, queries, adapter)
			if err != nil {
				s.log.Error("Document analysis failed", "file", document.FileName, "error", err)
				results[i] = contract.DocumentResult{FileName: document.FileName, Error: err.Error()}
				return
			}
			results[i] = contract.DocumentResult{FileName: document.FileName, Fields: fields.Candidates()}
		}(i, document)
	}
	wg.Wait()
	return results
}

// processDocument submits one job per page, staggered, waits for all of them
// and merges the per-page answers. Merging follows page order so the outcome
// never depends on which job finished first.
func (s *AnalyzerService) processDocument(
	ctx context.Context,
	document contract.DocumentKeys,
	queries []extraction.Query,
	adapter contract.AdapterConfig,
) (extraction.BestAnswerMap, error) {
	pageMaps := make([]extraction.BestAnswerMap, len(document.PageKeys))
	errs := make([]error, len(document.PageKeys))

	var wg sync.WaitGroup
	for i, key := range document.PageKeys {
		wg.Add(1)
		go func(pageIndex int, pageKey string) {
			defer wg.Done()
			if err := waitStagger(ctx, time.Duration(pageIndex)*s.conf.StaggerDelay); err != nil {
				errs[pageIndex] = err
				return
			}
			jobID, err := s.submitWithRetry(ctx, pageKey, queries, adapter)
			if err != nil {
				errs[pageIndex] = fmt.Errorf("page %d (%s): %w", pageIndex+1, pageKey, err)
				return
			}
			blocks, err := s.poller.AwaitCompletion(ctx, jobID)
			if err != nil {
				errs[pageIndex] = fmt.Errorf("page %d (%s), job %s: %w", pageIndex+1, pageKey, jobID, err)
				return
			}
			pageMaps[pageIndex] = extraction.FoldBlocks(blocks)
		}(i, key)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return extraction.MergeMaps(pageMaps...), nil
}

func (s *AnalyzerService) submitWithRetry(
	ctx context.Context,
	pageKey string,
	queries []extraction.Query,
	adapter contract.AdapterConfig,
) (string, error) {
	return backoff.Retry(ctx, s.conf.MaxRetryAttempts, s.conf.RetryBaseDelay, apperrors.IsRetryable,
		func() (string, error) {
			return s.backend.SubmitJob(ctx, pageKey, queries, adapter)
		})
}

// AnalyzeFinanceAgreement runs the synchronous analysis path over already
// staged finance documents. The finance query set exceeds the per-request
// cap, so it is chunked and every chunk's answers merge into one map.
func (s *AnalyzerService) AnalyzeFinanceAgreement(ctx context.Context, keys []string) ([]extraction.CandidateAnswer, error) {
	chunks := lo.Chunk(extraction.VehicleFinanceQueries(), maxQueriesPerRequest)

	maps := make([]extraction.BestAnswerMap, 0, len(keys)*len(chunks))
	for _, key := range keys {
		for _, chunk := range chunks {
			blocks, err := backoff.Retry(ctx, s.conf.MaxRetryAttempts, s.conf.RetryBaseDelay, apperrors.IsRetryable,
				func() ([]extraction.ResultBlock, error) {
					return s.backend.AnalyzeSync(ctx, key, chunk, s.conf.FinanceAdapter)
				})
			if err != nil {
				return nil, fmt.Errorf("analyzing %s: %w", key, err)
			}
			maps = append(maps, extraction.FoldBlocks(blocks))
		}
	}
	return extraction.MergeMaps(maps...).Candidates(), nil
}

func waitStagger(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
