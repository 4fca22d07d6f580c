package gridmap

import "errors"

var (
	// ErrMapLoad is returned when the map image is missing or cannot be decoded.
	ErrMapLoad = errors.New("gridmap: cannot load map image")

	// ErrMetadata is returned when the map yaml is missing or lacks a required field.
	ErrMetadata = errors.New("gridmap: invalid map metadata")
)
