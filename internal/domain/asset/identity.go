package asset

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID allocates the storage identifier for one uploaded file: a 128-bit
// value from the platform CSPRNG in canonical UUID form. Identifiers are
// independent per call, so concurrent uploads to the same slug can never
// collide on a filename and no uniqueness check against disk is needed.
func NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate asset id: %w", err)
	}
	return id.String(), nil
}
