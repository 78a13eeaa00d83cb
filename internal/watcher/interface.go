package watcher

import "context"

// Watcher monitors a directory for newly dropped lecture recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly detected media file.
type EventHandler func(ctx context.Context, filePath string) error
