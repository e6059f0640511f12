package upload

import "errors"

// ErrInvalidMimeType is returned when a file's MIME type is not accepted by the endpoint
var ErrInvalidMimeType = errors.New("invalid MIME type")

// ErrEmptyFile is returned when a file has no name or no content reader
var ErrEmptyFile = errors.New("empty file")
