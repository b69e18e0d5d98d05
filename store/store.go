// Package store is the document-store collaborator: schemaless persistence
// addressed by collection name and filter. The API boundary validates;
// the store does not.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the contract the handlers and the analysis orchestrator depend
// on: insert one document, find with filter and limit, list collections.
type Store interface {
	// Insert writes one document and returns its generated id in hex form.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Find returns up to limit documents matching filter, in store-default
	// order. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	// Collections lists collection names, for connectivity diagnostics.
	Collections(ctx context.Context) ([]string, error)
}
