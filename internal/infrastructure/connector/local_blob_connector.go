package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
)

// localBlobConnector keeps blobs as files below a root directory
type localBlobConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalBlobConnector creates a filesystem backed BlobConnector rooted at settings.LocalPath
func NewLocalBlobConnector(settings *config.BlobConnectorSettings, logger logger.Logger) (documents.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(settings.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve blob directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &localBlobConnector{root: root, logger: logger}, nil
}

func (c *localBlobConnector) path(key string) (string, error) {
	p := filepath.Join(c.root, filepath.FromSlash(key))
	if p == c.root || !strings.HasPrefix(p, c.root+string(filepath.Separator)) {
		return "", apperror.Validation("invalid blob key %q", key)
	}
	return p, nil
}

func (c *localBlobConnector) Upload(_ context.Context, key string, data []byte, _ string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	c.logger.Info("blob stored", "key", key, "size", len(data))
	return nil
}

func (c *localBlobConnector) Download(_ context.Context, key string) ([]byte, error) {
	p, err := c.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.NotFound("blob", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (c *localBlobConnector) Delete(_ context.Context, key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// NewBlobConnector selects the BlobConnector for the configured cloud provider
func NewBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (documents.BlobConnector, error) {
	switch settings.CloudProvider {
	case config.AzureCloudProvider:
		return NewAzureBlobConnector(ctx, settings, logger)
	case config.LocalCloudProvider:
		return NewLocalBlobConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}
}
