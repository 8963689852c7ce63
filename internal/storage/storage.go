package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"ecobrands/internal/model"
)

// Package storage contains the object storage abstraction for brand images (S3-compatible)
// and the public URL conventions used to serve them.

// ErrDisabled is returned by Disabled when no object storage endpoint is configured.
var ErrDisabled = errors.New("object storage is not configured")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size         int64
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object storage client for a single public bucket.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Bucket returns the bucket objects are written to.
	Bucket() string
}

// Disabled is the Storage used when uploads are turned off. Every write fails with ErrDisabled.
type Disabled struct{}

func (Disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (Disabled) Bucket() string { return "" }

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9]`)

// ImageKey builds the object key for an uploaded brand image:
// {kind}/{brand name, lowercased, non-alphanumerics as '-'}-{unix millis}.{ext}
func ImageKey(kind model.ImageKind, brandName, ext string, now time.Time) string {
	name := unsafeKeyChars.ReplaceAllString(strings.ToLower(brandName), "-")
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	return fmt.Sprintf("%s/%s-%d.%s", kind, name, now.UnixMilli(), ext)
}

// PublicURLs builds browser-facing URLs for objects in a public bucket.
type PublicURLs struct {
	// Base is the storage origin without a trailing slash, e.g. https://cdn.example.com.
	Base   string
	Bucket string
}

// Path returns the stored path of key: {bucket}/{key}.
func (p PublicURLs) Path(key string) string {
	return p.Bucket + "/" + key
}

// URL returns the public URL of key: {base}/{bucket}/{key}.
func (p PublicURLs) URL(key string) string {
	return p.Base + "/" + p.Path(key)
}

// Resolve turns a stored image path into a URL. Empty stays empty, and absolute
// http(s) URLs and site-relative paths are returned unchanged. Without a Base,
// paths are returned as stored.
func (p PublicURLs) Resolve(path string) string {
	if path == "" || p.Base == "" || strings.HasPrefix(path, "http") || strings.HasPrefix(path, "/") {
		return path
	}
	return p.Base + "/" + path
}
