package controller

import "errors"

// ErrEmptyReference is returned when a load is requested with a blank scene reference.
var ErrEmptyReference = errors.New("scene reference is empty")
