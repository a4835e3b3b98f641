//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	"github.com/choace0427/brightspeed-ai-backend/domain/identity"
)

type JobStatus string

const (
	StatusInProgress JobStatus = "IN_PROGRESS"
	StatusSucceeded  JobStatus = "SUCCEEDED"
	StatusFailed     JobStatus = "FAILED"
)

// AdapterConfig selects the backend customization profile tuned for a
// document template.
type AdapterConfig struct {
	ID      string
	Version string
}

// PollResult is one page of an asynchronous job's result set.
type PollResult struct {
	Status JobStatus
	Blocks []extraction.ResultBlock
	// ContinuationToken is set while more result pages remain.
	ContinuationToken string
}

// IAnalysisBackend is the document-analysis collaborator. Throttling errors
// it returns must satisfy errors.IsRetryable.
type IAnalysisBackend interface {
	SubmitJob(ctx context.Context, documentKey string, queries []extraction.Query, adapter AdapterConfig) (string, error)
	PollJob(ctx context.Context, jobID string, continuationToken string) (PollResult, error)
	AnalyzeSync(ctx context.Context, documentKey string, queries []extraction.Query, adapter AdapterConfig) ([]extraction.ResultBlock, error)
}

// IJobPoller drives one submitted job to a terminal state and returns the
// complete block set; partial results are never surfaced.
type IJobPoller interface {
	AwaitCompletion(ctx context.Context, jobID string) ([]extraction.ResultBlock, error)
}

// IObjectStore stages binary artifacts under caller-chosen keys.
type IObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// DeleteAll removes every artifact under prefix; deleting a prefix that
	// holds nothing is not an error.
	DeleteAll(ctx context.Context, prefix string) error
	PresignPut(ctx context.Context, key string, contentType string, expiry time.Duration) (string, error)
}

// IPageSplitter turns one multi-page document into single-page artifacts.
type IPageSplitter interface {
	PageCount(document []byte) (int, error)
	// ExtractPage returns page pageIndex (0-based) as a standalone document.
	ExtractPage(document []byte, pageIndex int) ([]byte, error)
}

// Upload is one received multipart file, held in memory for the lifetime of
// the request.
type Upload struct {
	FileName string `validate:"required,max=255"`
	Data     []byte `validate:"required"`
}

// DocumentKeys groups the staged page artifacts of one source document, in
// page order.
type DocumentKeys struct {
	FileName string   `json:"fileName" validate:"required"`
	PageKeys []string `json:"pageKeys" validate:"required,min=1,dive,required"`
}

type AnalyzeRequest struct {
	Documents      []DocumentKeys     `json:"documents" validate:"required,min=1,dive"`
	Queries        []extraction.Query `json:"queries" validate:"omitempty,dive"`
	AdapterID      string             `json:"adapterId" validate:"required"`
	AdapterVersion string             `json:"adapterVersion" validate:"required"`
}

// DocumentResult carries either the reconciled fields or the error that
// stopped this document; sibling documents are unaffected either way.
type DocumentResult struct {
	FileName string                       `json:"fileName"`
	Fields   []extraction.CandidateAnswer `json:"fields"`
	Error    string                       `json:"error,omitempty"`
}

type IdentityCheckRequest struct {
	Upload    Upload `validate:"required"`
	FirstName string `validate:"required,max=128"`
	LastName  string `validate:"required,max=128"`
	// DateOfBirth is the expected value in YYYY-MM-DD form.
	DateOfBirth string `validate:"required"`
}

type PresignRequest struct {
	Key string `json:"key" validate:"required,max=1024"`
}

type FinanceAnalyzeRequest struct {
	Keys []string `json:"keys" validate:"required,min=1,dive,required"`
}

type IUploadService interface {
	Stage(ctx context.Context, uploads []Upload) ([]DocumentKeys, error)
	StageIdentityImage(ctx context.Context, upload Upload) (string, error)
	Cleanup(ctx context.Context) error
	PresignUpload(ctx context.Context, key string) (string, error)
}

type IAnalyzerService interface {
	ProcessBatch(ctx context.Context, request AnalyzeRequest) []DocumentResult
	AnalyzeFinanceAgreement(ctx context.Context, keys []string) ([]extraction.CandidateAnswer, error)
}

type IIdentityService interface {
	Check(ctx context.Context, request IdentityCheckRequest) (identity.Report, error)
}
