// Package storage stores listing photos in an S3-compatible bucket.
//
// Objects are uploaded public-read under a date-partitioned key with a
// random UUID filename, and the public URL is what gets persisted on the
// property or blog record. A custom endpoint supports MinIO and other
// S3-compatible providers.
package storage
