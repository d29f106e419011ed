package services

import (
	"context"
	"io"
)

// MediaSvcFacade is the external image host: uploads return a durable public
// URL, deletion by key is idempotent.
type MediaSvcFacade interface {
	// Upload stores an object under the folder and returns its public URL
	// and storage key.
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (url string, key string, err error)

	// Delete removes an object by key. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error
}
