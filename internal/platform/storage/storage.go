package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrObjectNotFound indicates a delete or read of a missing object.
var ErrObjectNotFound = errors.New("object not found")

// Store abstracts the public file buckets. Uploads to an existing path
// overwrite the object, which gives the avatar bucket its one-object-per-user
// semantics.
type Store interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, bucket, objectPath, contentType string, r io.Reader) (string, error)
	// Delete removes the object. Deleting a missing object returns
	// ErrObjectNotFound.
	Delete(ctx context.Context, bucket, objectPath string) error
	// PublicURL returns the URL an object is served from.
	PublicURL(bucket, objectPath string) string
}

// allowedImageExts are the upload extensions accepted for avatars and posts.
var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageContentType maps a filename to its image content type. The second
// return is false for non-image extensions.
func ImageContentType(filename string) (string, bool) {
	ext := strings.ToLower(path.Ext(filename))
	ct, ok := allowedImageExts[ext]
	return ct, ok
}

// Ext returns the lower-cased extension of a filename without the dot,
// defaulting to "jpg" when absent.
func Ext(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}
