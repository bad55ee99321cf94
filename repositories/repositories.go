package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced document does not exist.
// Services match on this to map storage misses to 404 responses without
// depending on driver error types.
var ErrNotFound = errors.New("document not found")

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
