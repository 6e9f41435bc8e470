package dashboard

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/flagdeck/pkg/feature"
)

// ErrInvalidSeed indicates that seed data could not be decoded.
var ErrInvalidSeed = errors.New("invalid flag seed data")

func duplicateIDError(id string) error {
	return errors.Join(feature.ErrDuplicateID, fmt.Errorf("flag id %q appears more than once", id))
}
