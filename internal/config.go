package internal

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"5000"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// BaseURL is the afs URL every staged artifact lives under,
	// e.g. s3://ocr-demo-bucket-advantage (mem://localhost/ocr in tests).
	BaseURL   string `envconfig:"STORAGE_BASE_URL" required:"true"`
	AWSRegion string `envconfig:"AWS_REGION" default:"eu-west-2"`

	// MaxUploadBytes bounds one multipart upload kept in memory.
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"33554432"`

	// Job submission is staggered by page index * StaggerDelay so a burst of
	// pages does not trip the backend's job-start quota.
	StaggerDelay time.Duration `envconfig:"STAGGER_DELAY" default:"5s"`

	MaxPollAttempts int           `envconfig:"MAX_POLL_ATTEMPTS" default:"20"`
	PollDelay       time.Duration `envconfig:"POLL_DELAY" default:"5s"`

	MaxRetryAttempts int           `envconfig:"MAX_RETRY_ATTEMPTS" default:"5"`
	RetryBaseDelay   time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`

	// Adapter defaults for the built-in flows; batch analyze requests carry
	// their own adapter id/version.
	IdentityAdapterID      string        `envconfig:"IDENTITY_ADAPTER_ID" default:"1d4ba44bfc6b"`
	IdentityAdapterVersion string        `envconfig:"IDENTITY_ADAPTER_VERSION" default:"1"`
	FinanceAdapterID       string        `envconfig:"FINANCE_ADAPTER_ID" default:"9abf280d752c"`
	FinanceAdapterVersion  string        `envconfig:"FINANCE_ADAPTER_VERSION" default:"2"`
	PresignedURLExpiry     time.Duration `envconfig:"PRESIGNED_URL_EXPIRY" default:"10h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
