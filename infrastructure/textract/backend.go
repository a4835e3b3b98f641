// Package textract adapts AWS Textract to the analysis-backend contract.
package textract

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/textract"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
)

var _ contract.IAnalysisBackend = (*Backend)(nil)

type Backend struct {
	client *textract.Textract
	bucket string
	log    *slog.Logger
}

func NewBackend(client *textract.Textract, bucket string, log *slog.Logger) *Backend {
	return &Backend{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// SubmitJob starts an asynchronous analysis of one staged artifact. No retry
// here: submission failures propagate to the caller.
func (b *Backend) SubmitJob(ctx context.Context, documentKey string, queries []extraction.Query, adapter contract.AdapterConfig) (string, error) {
	input := &textract.StartDocumentAnalysisInput{
		AdaptersConfig: toAdaptersConfig(adapter),
		DocumentLocation: &textract.DocumentLocation{
			S3Object: &textract.S3Object{
				Bucket: aws.String(b.bucket),
				Name:   aws.String(documentKey),
			},
		},
		FeatureTypes: aws.StringSlice([]string{textract.FeatureTypeQueries}),
		QueriesConfig: &textract.QueriesConfig{
			Queries: toAWSQueries(queries),
		},
	}

	out, err := b.client.StartDocumentAnalysisWithContext(ctx, input)
	if err != nil {
		return "", classify(err)
	}
	jobID := aws.StringValue(out.JobId)
	b.log.Debug("Analysis job submitted", "job_id", jobID, "key", documentKey)
	return jobID, nil
}

// PollJob fetches one page of a job's status/result set.
func (b *Backend) PollJob(ctx context.Context, jobID string, continuationToken string) (contract.PollResult, error) {
	input := &textract.GetDocumentAnalysisInput{
		JobId: aws.String(jobID),
	}
	if continuationToken != "" {
		input.NextToken = aws.String(continuationToken)
	}

	out, err := b.client.GetDocumentAnalysisWithContext(ctx, input)
	if err != nil {
		return contract.PollResult{}, classify(err)
	}
	return contract.PollResult{
		Status:            contract.JobStatus(aws.StringValue(out.JobStatus)),
		Blocks:            fromAWSBlocks(out.Blocks),
		ContinuationToken: aws.StringValue(out.NextToken),
	}, nil
}

// AnalyzeSync analyzes a single-page artifact in one call, for flows where
// polling is unnecessary.
func (b *Backend) AnalyzeSync(ctx context.Context, documentKey string, queries []extraction.Query, adapter contract.AdapterConfig) ([]extraction.ResultBlock, error) {
	input := &textract.AnalyzeDocumentInput{
		AdaptersConfig: toAdaptersConfig(adapter),
		Document: &textract.Document{
			S3Object: &textract.S3Object{
				Bucket: aws.String(b.bucket),
				Name:   aws.String(documentKey),
			},
		},
		FeatureTypes: aws.StringSlice([]string{textract.FeatureTypeQueries}),
		QueriesConfig: &textract.QueriesConfig{
			Queries: toAWSQueries(queries),
		},
	}

	out, err := b.client.AnalyzeDocumentWithContext(ctx, input)
	if err != nil {
		return nil, classify(err)
	}
	return fromAWSBlocks(out.Blocks), nil
}

// classify tags the fixed set of throttling failure kinds as retryable;
// every other error passes through untouched.
func classify(err error) error {
	if awsErr, ok := err.(awserr.Error); ok {
		switch awsErr.Code() {
		case textract.ErrCodeThrottlingException,
			textract.ErrCodeProvisionedThroughputExceededException:
			return apperrors.Throttled(err)
		}
	}
	return err
}

func toAWSQueries(queries []extraction.Query) []*textract.Query {
	out := make([]*textract.Query, 0, len(queries))
	for _, q := range queries {
		out = append(out, &textract.Query{
			Alias: aws.String(q.Alias),
			Text:  aws.String(q.Text),
		})
	}
	return out
}

func toAdaptersConfig(adapter contract.AdapterConfig) *textract.AdaptersConfig {
	if adapter.ID == "" {
		return nil
	}
	return &textract.AdaptersConfig{
		Adapters: []*textract.Adapter{
			{
				AdapterId: aws.String(adapter.ID),
				// Staged artifacts are single-page documents.
				Pages:   aws.StringSlice([]string{"1"}),
				Version: aws.String(adapter.Version),
			},
		},
	}
}

func fromAWSBlocks(blocks []*textract.Block) []extraction.ResultBlock {
	out := make([]extraction.ResultBlock, 0, len(blocks))
	for _, block := range blocks {
		if block == nil {
			continue
		}
		converted := extraction.ResultBlock{
			ID:         aws.StringValue(block.Id),
			Kind:       extraction.BlockKind(aws.StringValue(block.BlockType)),
			Text:       aws.StringValue(block.Text),
			Confidence: aws.Float64Value(block.Confidence),
		}
		if block.Query != nil {
			converted.Query = &extraction.Query{
				Alias: aws.StringValue(block.Query.Alias),
				Text:  aws.StringValue(block.Query.Text),
			}
		}
		if len(block.Relationships) > 0 {
			converted.ResultIDs = aws.StringValueSlice(block.Relationships[0].Ids)
		}
		out = append(out, converted)
	}
	return out
}
