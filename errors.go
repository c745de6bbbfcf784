package sceneprobe

import (
	"errors"

	"github.com/ProtonMail/sceneprobe/controller"
)

var ErrProbeClosed = errors.New("probe is closed")

// IsEmptyReference returns true if the error is due to a load requested with a blank scene reference.
func IsEmptyReference(err error) bool {
	return errors.Is(err, controller.ErrEmptyReference)
}
