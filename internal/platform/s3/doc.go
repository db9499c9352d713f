// Package s3 provides a small client for S3-compatible object storage.
//
// It is used to upload submitted applications to a bucket. Credentials come
// from the static keys in [Config] when set, otherwise from the default AWS
// credential chain (environment, shared config, instance role).
package s3
