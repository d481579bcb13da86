package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for storing uploaded media (business
// covers, product images) in a blob bucket and resolving their public URLs.
type MediaStorage interface {
	// Save writes the media under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes a previously stored object. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
