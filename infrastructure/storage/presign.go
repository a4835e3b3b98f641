package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Presigner issues presigned PUT URLs; afs carries no presign surface, so
// this one operation talks to the SDK directly.
type S3Presigner struct {
	client *s3.S3
	bucket string
}

func NewS3Presigner(client *s3.S3, bucket string) *S3Presigner {
	return &S3Presigner{client: client, bucket: bucket}
}

func (p *S3Presigner) PresignPut(_ context.Context, key string, contentType string, expiry time.Duration) (string, error) {
	request, _ := p.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	signedURL, err := request.Presign(expiry)
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}
	return signedURL, nil
}
