package submit

import "errors"

var (
	// ErrOverwriteDeclined is returned when the user keeps an existing file.
	ErrOverwriteDeclined = errors.New("existing file kept, application not written")
	// ErrInvalidS3URL is returned for destinations not of the form s3://bucket[/prefix].
	ErrInvalidS3URL = errors.New("invalid S3 destination (expected s3://bucket[/prefix])")
	// ErrBucketNotFound is returned when the destination bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
