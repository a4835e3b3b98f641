package textract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
	"github.com/choace0427/brightspeed-ai-backend/runtime/backoff"
)

var _ contract.IJobPoller = (*JobPoller)(nil)

// JobPoller drives one submitted job from POLLING to a terminal state.
type JobPoller struct {
	backend contract.IAnalysisBackend
	log     *slog.Logger

	maxPollAttempts  int
	pollDelay        time.Duration
	maxRetryAttempts int
	retryBaseDelay   time.Duration
}

func NewJobPoller(
	backend contract.IAnalysisBackend,
	log *slog.Logger,
	maxPollAttempts int,
	pollDelay time.Duration,
	maxRetryAttempts int,
	retryBaseDelay time.Duration,
) *JobPoller {
	return &JobPoller{
		backend:          backend,
		log:              log,
		maxPollAttempts:  maxPollAttempts,
		pollDelay:        pollDelay,
		maxRetryAttempts: maxRetryAttempts,
		retryBaseDelay:   retryBaseDelay,
	}
}

// jobHandle is the transient state of one job; it dies with the call.
type jobHandle struct {
	jobID     string
	nextToken string
	blocks    []extraction.ResultBlock
}

// AwaitCompletion polls the job until it succeeds, fails, or the attempt
// budget runs out.
//
// Two loops hide inside one: backend throttling on a single poll is absorbed
// by backoff without consuming a poll attempt, and a continuation token
// triggers another poll without consuming one either — pagination is not a
// retry. Only "still running" statuses and unexpected poll errors count
// against maxPollAttempts. Blocks are returned solely once the backend's
// whole result set has been drained.
func (p *JobPoller) AwaitCompletion(ctx context.Context, jobID string) ([]extraction.ResultBlock, error) {
	handle := jobHandle{jobID: jobID}

	attempts := 0
	for attempts < p.maxPollAttempts {
		result, err := backoff.Retry(ctx, p.maxRetryAttempts, p.retryBaseDelay, apperrors.IsRetryable,
			func() (contract.PollResult, error) {
				return p.backend.PollJob(ctx, handle.jobID, handle.nextToken)
			})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.log.Warn("Poll attempt failed", "job_id", jobID, "error", err)
			attempts++
			if waitErr := p.wait(ctx); waitErr != nil {
				return nil, waitErr
			}
			continue
		}

		switch result.Status {
		case contract.StatusSucceeded:
			handle.blocks = append(handle.blocks, result.Blocks...)
			handle.nextToken = result.ContinuationToken
			if handle.nextToken == "" {
				return handle.blocks, nil
			}
		case contract.StatusFailed:
			return nil, fmt.Errorf("%w: job %s", apperrors.ErrJobFailed, jobID)
		default:
			p.log.Debug("Job still running", "job_id", jobID, "status", result.Status)
			attempts++
			if waitErr := p.wait(ctx); waitErr != nil {
				return nil, waitErr
			}
		}
	}

	return nil, fmt.Errorf("%w: job %s after %d attempts", apperrors.ErrPollTimeout, jobID, p.maxPollAttempts)
}

func (p *JobPoller) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.pollDelay):
		return nil
	}
}
