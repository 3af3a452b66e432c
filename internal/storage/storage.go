package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"boutiquehub/internal/config"
)

// Storer resolves an uploaded file to a URL or a local path.
type Storer interface {
	Store(ctx context.Context, basename string, r io.Reader) (string, error)
}

// New builds the storer for the process: the remote driver guarded by the
// local fallback when credentials are configured, plain local disk otherwise.
func New(cfg *config.Config, lg *zap.SugaredLogger) (Storer, error) {
	local := NewLocal(cfg.UploadDir)
	if !cfg.S3.Configured() {
		return local, nil
	}
	remote, err := NewS3(&cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("s3 storage: %w", err)
	}
	return NewFallback(remote, local, lg), nil
}

// objectName prefixes the basename with epoch millis so concurrent uploads
// of the same filename never collide.
func objectName(basename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), basename)
}
