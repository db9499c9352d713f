package submit

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/platform/s3"
)

// ObjectStore is the subset of the S3 client used by S3Sink.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error
}

// Destination is a parsed s3://bucket/prefix URL.
type Destination struct {
	Bucket string
	Prefix string
}

// ParseS3URL parses s3://bucket[/prefix].
func ParseS3URL(raw string) (Destination, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return Destination{}, fmt.Errorf("%w: %q", ErrInvalidS3URL, raw)
	}
	return Destination{
		Bucket: u.Host,
		Prefix: strings.Trim(u.Path, "/"),
	}, nil
}

// Key returns the object key for a receipt.
func (d Destination) Key(r *Receipt) string {
	return path.Join(d.Prefix, r.SubmittedAt.Format("2006/01/02"), r.Reference+".yaml")
}

// S3Sink uploads the application document to object storage.
type S3Sink struct {
	store ObjectStore
	dest  Destination
	retry RetryPolicy
}

// NewS3Sink parses the destination URL and builds a client from cfg.
func NewS3Sink(ctx context.Context, rawURL string, cfg s3.Config) (*S3Sink, error) {
	dest, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	client, err := s3.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &S3Sink{store: client, dest: dest, retry: DefaultRetryPolicy()}, nil
}

// NewS3SinkWithStore builds a sink on an existing store.
func NewS3SinkWithStore(store ObjectStore, dest Destination) *S3Sink {
	return &S3Sink{store: store, dest: dest, retry: DefaultRetryPolicy()}
}

// WithRetry replaces the upload retry policy.
func (s *S3Sink) WithRetry(p RetryPolicy) *S3Sink {
	s.retry = p
	return s
}

// Submit uploads the application document. A missing bucket is not retried.
func (s *S3Sink) Submit(ctx context.Context, r *Receipt, app *admission.Application) error {
	data, err := Encode(r, app)
	if err != nil {
		return err
	}
	key := s.dest.Key(r)

	return s.retry.do(ctx, func() error {
		exists, err := s.store.BucketExists(ctx, s.dest.Bucket)
		if err != nil {
			return err
		}
		if !exists {
			return permanent(fmt.Errorf("%w: %s", ErrBucketNotFound, s.dest.Bucket))
		}
		return s.store.PutObject(ctx, s.dest.Bucket, key, "application/yaml", data)
	})
}

// Location returns the s3:// URL of the uploaded object.
func (s *S3Sink) Location(r *Receipt) string {
	return "s3://" + s.dest.Bucket + "/" + s.dest.Key(r)
}
