package xlevel

import "errors"

var (
	// ErrNoSink is returned by Builder.Build when no Sink was configured.
	ErrNoSink = errors.New("xlevel: no sink configured")

	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("xlevel: format/argument mismatch")

	ErrUnknownLevel = errors.New("xlevel: unknown level")
)
