package runtime

import "errors"

var (
	ErrStarted    = errors.New("runtime: already started")
	ErrStopped    = errors.New("runtime: already stopped")
	ErrNoExecutor = errors.New("runtime: no executor configured")
)
