package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Fallback tries the remote driver once and drops to local disk on any
// remote error. There is no retry and no later reconciliation: a file
// stored locally stays local.
type Fallback struct {
	remote Storer
	local  Storer
	lg     *zap.SugaredLogger
}

func NewFallback(remote, local Storer, lg *zap.SugaredLogger) *Fallback {
	return &Fallback{remote: remote, local: local, lg: lg}
}

func (f *Fallback) Store(ctx context.Context, basename string, r io.Reader) (string, error) {
	// Buffer once so the local attempt can replay the bytes the remote
	// attempt consumed.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	url, err := f.remote.Store(ctx, basename, bytes.NewReader(data))
	if err == nil {
		return url, nil
	}
	f.lg.Warnw("remote upload failed, falling back to local disk", "file", basename, "error", err)
	return f.local.Store(ctx, basename, bytes.NewReader(data))
}
