package repository

import (
	"errors"
	"fmt"

	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/domain/entities"
)

// ErrInvalidDocument marks a stored document that does not satisfy its schema.
var ErrInvalidDocument = errors.New("invalid stored document")

// decodeDocuments strips the storage id from every document and validates
// the decoded value against its schema.
func decodeDocuments[T any](collection string, docs []documentstore.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := doc.WithoutID().Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidDocument, collection, doc.ID(), err)
		}
		if err := entities.Validate(v); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidDocument, collection, doc.ID(), err)
		}
		out = append(out, v)
	}
	return out, nil
}
