// Package submit delivers completed admission applications.
//
// A [Sink] receives the application together with a [Receipt] carrying its
// reference number. [FileSink] writes a YAML document to disk and [S3Sink]
// uploads the same document to object storage. Drafts let a user save an
// unfinished application and resume it later.
package submit
