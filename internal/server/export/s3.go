// Package export uploads log snapshots to S3-compatible object storage and
// hands out presigned download links for them.
package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Options configures an S3Exporter. BaseEndpoint may be empty for AWS
// itself; for MinIO it is the server URL.
type Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
	URLValidity  time.Duration
	UsePathStyle bool
	ContentType  string
}

type S3Exporter struct {
	client  *s3.Client
	presign *s3.PresignClient
	opts    Options
}

// NewS3Exporter builds the S3 client eagerly so that configuration errors
// show up at startup.
func NewS3Exporter(ctx context.Context, opts Options) (*S3Exporter, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not set")
	}
	if opts.URLValidity <= 0 {
		opts.URLValidity = 15 * time.Minute
	}
	if opts.ContentType == "" {
		opts.ContentType = "application/json"
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return &S3Exporter{
		client:  client,
		presign: s3.NewPresignClient(client),
		opts:    opts,
	}, nil
}

// Export stores body under key and returns a presigned GET URL for it.
func (e *S3Exporter) Export(ctx context.Context, key string, body []byte) (string, error) {
	bucket := e.opts.Bucket

	in := &s3.PutObjectInput{
		Bucket:        &bucket,
		Key:           &key,
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(e.opts.ContentType),
	}

	if _, err := putObject(e.client, ctx, in); err != nil {
		return "", fmt.Errorf("s3 put error: %w", err)
	}

	req, err := presignGetObject(e.presign, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(e.opts.URLValidity))
	if err != nil {
		return "", fmt.Errorf("s3 presign error: %w", err)
	}

	return req.URL, nil
}

// StorageKey returns a fresh object key for an export of userID's log made
// at t: exports/<user>/<yyyy>/<mm>/<dd>/<uuid>.json.
func StorageKey(userID string, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", userID, t.Year(), int(t.Month()), t.Day(), uuid.NewString())
}
