package mirror

import (
	"context"
	"io"
)

// Terminal is the display side of a mirror
type Terminal interface {
	io.Writer
	Size() (cols int, rows int)
	Acquire() error
	Release() error
	Clear() error
}

// Service mirrors a screen until ctx is cancelled
type Service interface {
	Run(ctx context.Context) error
}
