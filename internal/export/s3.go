package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/errors"
)

// ObjectPutter is the subset of the S3 client used by S3Publisher.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads exported pages to an S3 bucket.
type S3Publisher struct {
	client       ObjectPutter
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Publisher creates a publisher writing to bucket under prefix.
func NewS3Publisher(client ObjectPutter, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "public, max-age=300",
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (p *S3Publisher) WithCacheControl(v string) *S3Publisher {
	p.cacheControl = v
	return p
}

// Key returns the object key for an exported file name.
func (p *S3Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish uploads body as the object for name.
func (p *S3Publisher) Publish(ctx context.Context, name string, body []byte, contentType string) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(p.Key(name)),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(p.cacheControl),
	})
	if err != nil {
		return errors.New("E302").WithDetailf("s3://%s/%s", p.bucket, p.Key(name)).Wrap(err)
	}
	return nil
}

// NewS3Client builds an S3 client from the export settings. Credentials
// come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and the optional
// AWS_SESSION_TOKEN. A custom endpoint switches to path-style addressing,
// as S3-compatible stores expect.
func NewS3Client(cfg config.S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
