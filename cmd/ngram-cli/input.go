package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// splitBlobURL splits "s3://bucket/dir/file.jsonl" into the bucket URL and the key.
// file:// URLs keep the directory in the bucket part.
func splitBlobURL(input string) (bucketURL, key string, err error) {
	u, err := url.Parse(input)
	if err != nil {
		return "", "", fmt.Errorf("can't parse input URL %s: %w", input, err)
	}
	if u.Scheme == "file" {
		return (&url.URL{Scheme: "file", Path: path.Dir(u.Path), RawQuery: u.RawQuery}).String(), path.Base(u.Path), nil
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("input URL %s has no object key", input)
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}).String(), key, nil
}

// openInput opens a local path or a blob URL for reading.
func openInput(ctx context.Context, input string) (io.ReadCloser, error) {
	var bucket *blob.Bucket
	var key string
	if strings.Contains(input, "://") {
		bucketURL, k, err := splitBlobURL(input)
		if err != nil {
			return nil, err
		}
		bucket, err = blob.OpenBucket(ctx, bucketURL)
		if err != nil {
			return nil, fmt.Errorf("can't open bucket %s: %w", bucketURL, err)
		}
		key = k
	} else {
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, err
		}
		bucket, err = fileblob.OpenBucket(filepath.Dir(abs), nil)
		if err != nil {
			return nil, fmt.Errorf("can't open folder of %s: %w", input, err)
		}
		key = filepath.Base(abs)
	}
	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		bucket.Close()
		return nil, err
	}
	return &bucketReader{Reader: reader, bucket: bucket}, nil
}

type bucketReader struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (b *bucketReader) Close() error {
	err := b.Reader.Close()
	if closeErr := b.bucket.Close(); err == nil {
		err = closeErr
	}
	return err
}
