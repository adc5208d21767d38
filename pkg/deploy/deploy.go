// Package deploy uploads a built hashnav app directory to S3.
//
// The uploader walks the directory tree and puts every file under the
// configured bucket and key prefix with a content type derived from
// the file extension, so a bucket behind a CDN serves the app as-is.
package deploy

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/hashnav/internal/errors"
)

// S3API is the slice of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader pushes a directory tree to an S3 bucket.
type Uploader struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

// NewUploader creates an uploader for the given bucket and key prefix.
func NewUploader(client S3API, bucket, prefix string) *Uploader {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "deploy"),
	}
}

// UploadDir uploads every regular file under dir, preserving relative
// paths below the prefix. It returns the number of files uploaded. The
// first failed put aborts the walk.
func (u *Uploader) UploadDir(ctx context.Context, dir string) (int, error) {
	if u.bucket == "" {
		return 0, errors.New("H201")
	}

	uploaded := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := u.prefix + filepath.ToSlash(rel)

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType(path)),
		})
		if err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}

		u.logger.Info("uploaded", "key", key, "bytes", len(data))
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, errors.New("H202").Wrap(err)
	}
	return uploaded, nil
}

// contentType maps a file to its MIME type. Wasm gets pinned
// explicitly: instantiateStreaming refuses anything else.
func contentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".wasm" {
		return "application/wasm"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
