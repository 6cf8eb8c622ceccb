package contracts

import "context"

// DocumentStore keeps a copy of every archived document.
type DocumentStore interface {
	Store(ctx context.Context, objectName, contentType string, data []byte) error
}
