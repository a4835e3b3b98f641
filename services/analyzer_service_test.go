package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
	"github.com/choace0427/brightspeed-ai-backend/mocks"
)

func answerBlocks(alias, text string, confidence float64) []extraction.ResultBlock {
	resultID := alias + "-r"
	return []extraction.ResultBlock{
		{
			ID:        alias + "-q",
			Kind:      extraction.KindQuery,
			Query:     &extraction.Query{Alias: alias, Text: "What is " + alias + "?"},
			ResultIDs: []string{resultID},
		},
		{
			ID:         resultID,
			Kind:       extraction.KindQueryResult,
			Text:       text,
			Confidence: confidence,
		},
	}
}

func testAnalyzer(backend *mocks.MockIAnalysisBackend, poller *mocks.MockIJobPoller, stagger time.Duration) *AnalyzerService {
	return NewAnalyzerService(backend, poller, slog.Default(), AnalyzerConfig{
		StaggerDelay:     stagger,
		FinanceAdapter:   contract.AdapterConfig{ID: "finance-adapter", Version: "2"},
		MaxRetryAttempts: 3,
		RetryBaseDelay:   time.Millisecond,
	})
}

func TestAnalyzerService_ProcessBatch_MergesPagesInOrder(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	poller := mocks.NewMockIJobPoller(ctrl)
	service := testAnalyzer(backend, poller, 0)

	request := contract.AnalyzeRequest{
		Documents: []contract.DocumentKeys{
			{FileName: "passport.pdf", PageKeys: []string{"splitted-pages/d/page_1.pdf", "splitted-pages/d/page_2.pdf"}},
		},
		Queries:        []extraction.Query{{Alias: "SURNAME", Text: "What is the surname?"}},
		AdapterID:      "adapter-1",
		AdapterVersion: "1",
	}

	backend.EXPECT().
		SubmitJob(ctx, "splitted-pages/d/page_1.pdf", request.Queries, contract.AdapterConfig{ID: "adapter-1", Version: "1"}).
		Return("job-1", nil)
	backend.EXPECT().
		SubmitJob(ctx, "splitted-pages/d/page_2.pdf", request.Queries, contract.AdapterConfig{ID: "adapter-1", Version: "1"}).
		Return("job-2", nil)
	poller.EXPECT().AwaitCompletion(ctx, "job-1").Return(answerBlocks("SURNAME", "SMITH", 80), nil)
	poller.EXPECT().AwaitCompletion(ctx, "job-2").Return(answerBlocks("SURNAME", "SMYTHE", 95), nil)

	results := service.ProcessBatch(ctx, request)
	req.Len(results, 1)
	req.Equal("passport.pdf", results[0].FileName)
	req.Empty(results[0].Error)
	req.Len(results[0].Fields, 1)
	req.Equal("SMYTHE", results[0].Fields[0].AnswerText)
	req.InDelta(95, results[0].Fields[0].Confidence, 0.001)
}

func TestAnalyzerService_ProcessBatch_IsolatesFailingDocuments(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	poller := mocks.NewMockIJobPoller(ctrl)
	service := testAnalyzer(backend, poller, 0)

	request := contract.AnalyzeRequest{
		Documents: []contract.DocumentKeys{
			{FileName: "broken.pdf", PageKeys: []string{"splitted-pages/a/page_1.pdf"}},
			{FileName: "fine.pdf", PageKeys: []string{"splitted-pages/b/page_1.pdf"}},
		},
		Queries:        []extraction.Query{{Alias: "SURNAME", Text: "What is the surname?"}},
		AdapterID:      "adapter-1",
		AdapterVersion: "1",
	}

	backend.EXPECT().
		SubmitJob(ctx, "splitted-pages/a/page_1.pdf", gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("document too large"))
	backend.EXPECT().
		SubmitJob(ctx, "splitted-pages/b/page_1.pdf", gomock.Any(), gomock.Any()).
		Return("job-b", nil)
	poller.EXPECT().AwaitCompletion(ctx, "job-b").Return(answerBlocks("SURNAME", "DUPONT", 99), nil)

	results := service.ProcessBatch(ctx, request)
	req.Len(results, 2)
	req.Equal("broken.pdf", results[0].FileName)
	req.Contains(results[0].Error, "document too large")
	req.Empty(results[0].Fields)
	req.Equal("fine.pdf", results[1].FileName)
	req.Empty(results[1].Error)
	req.Len(results[1].Fields, 1)
}

func TestAnalyzerService_ProcessBatch_DefaultsToIdentityQueries(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	poller := mocks.NewMockIJobPoller(ctrl)
	service := testAnalyzer(backend, poller, 0)

	backend.EXPECT().
		SubmitJob(ctx, "splitted-pages/d/page_1.pdf", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, queries []extraction.Query, _ contract.AdapterConfig) (string, error) {
			req.Equal(extraction.IdentityDocumentQueries(), queries)
			return "job-1", nil
		})
	poller.EXPECT().AwaitCompletion(ctx, "job-1").Return(nil, nil)

	results := service.ProcessBatch(ctx, contract.AnalyzeRequest{
		Documents:      []contract.DocumentKeys{{FileName: "id.pdf", PageKeys: []string{"splitted-pages/d/page_1.pdf"}}},
		AdapterID:      "adapter-1",
		AdapterVersion: "1",
	})
	req.Len(results, 1)
	req.Empty(results[0].Error)
}

func TestAnalyzerService_ProcessBatch_RetriesThrottledSubmission(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	poller := mocks.NewMockIJobPoller(ctrl)
	service := testAnalyzer(backend, poller, 0)

	gomock.InOrder(
		backend.EXPECT().
			SubmitJob(ctx, "splitted-pages/d/page_1.pdf", gomock.Any(), gomock.Any()).
			Return("", apperrors.Throttled(fmt.Errorf("rate exceeded"))),
		backend.EXPECT().
			SubmitJob(ctx, "splitted-pages/d/page_1.pdf", gomock.Any(), gomock.Any()).
			Return("job-1", nil),
	)
	poller.EXPECT().AwaitCompletion(ctx, "job-1").Return(answerBlocks("SURNAME", "SMITH", 90), nil)

	results := service.ProcessBatch(ctx, contract.AnalyzeRequest{
		Documents:      []contract.DocumentKeys{{FileName: "id.pdf", PageKeys: []string{"splitted-pages/d/page_1.pdf"}}},
		Queries:        []extraction.Query{{Alias: "SURNAME", Text: "What is the surname?"}},
		AdapterID:      "adapter-1",
		AdapterVersion: "1",
	})
	req.Empty(results[0].Error)
	req.Len(results[0].Fields, 1)
}

func TestAnalyzerService_ProcessBatch_StaggersPageSubmissions(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	poller := mocks.NewMockIJobPoller(ctrl)
	stagger := 40 * time.Millisecond
	service := testAnalyzer(backend, poller, stagger)

	submissions := make(chan string, 2)
	backend.EXPECT().
		SubmitJob(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ []extraction.Query, _ contract.AdapterConfig) (string, error) {
			submissions <- key
			return "job-" + key, nil
		}).
		Times(2)
	poller.EXPECT().AwaitCompletion(ctx, gomock.Any()).Return(nil, nil).Times(2)

	start := time.Now()
	service.ProcessBatch(ctx, contract.AnalyzeRequest{
		Documents: []contract.DocumentKeys{
			{FileName: "id.pdf", PageKeys: []string{"splitted-pages/d/page_1.pdf", "splitted-pages/d/page_2.pdf"}},
		},
		Queries:        []extraction.Query{{Alias: "SURNAME", Text: "What is the surname?"}},
		AdapterID:      "adapter-1",
		AdapterVersion: "1",
	})

	req.GreaterOrEqual(time.Since(start), stagger)
	req.Equal("splitted-pages/d/page_1.pdf", <-submissions)
	req.Equal("splitted-pages/d/page_2.pdf", <-submissions)
}

func TestAnalyzerService_AnalyzeFinanceAgreement(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	service := testAnalyzer(backend, mocks.NewMockIJobPoller(ctrl), 0)

	var chunkSizes []int
	backend.EXPECT().
		AnalyzeSync(ctx, "paystubs/march.pdf", gomock.Any(), contract.AdapterConfig{ID: "finance-adapter", Version: "2"}).
		DoAndReturn(func(_ context.Context, _ string, queries []extraction.Query, _ contract.AdapterConfig) ([]extraction.ResultBlock, error) {
			chunkSizes = append(chunkSizes, len(queries))
			req.LessOrEqual(len(queries), maxQueriesPerRequest)
			return answerBlocks(queries[0].Alias, "ANSWER", 75), nil
		}).
		Times(2)

	fields, err := service.AnalyzeFinanceAgreement(ctx, []string{"paystubs/march.pdf"})
	req.NoError(err)
	totalQueries := len(extraction.VehicleFinanceQueries())
	req.Equal([]int{maxQueriesPerRequest, totalQueries - maxQueriesPerRequest}, chunkSizes)
	// One answer per chunk, each under a different alias.
	req.Len(fields, 2)
}

func TestAnalyzerService_AnalyzeFinanceAgreement_Failure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIAnalysisBackend(ctrl)
	service := testAnalyzer(backend, mocks.NewMockIJobPoller(ctrl), 0)

	backend.EXPECT().
		AnalyzeSync(ctx, "paystubs/march.pdf", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("unsupported document"))

	_, err := service.AnalyzeFinanceAgreement(ctx, []string{"paystubs/march.pdf"})
	req.Error(err)
	req.Contains(err.Error(), "paystubs/march.pdf")
}
