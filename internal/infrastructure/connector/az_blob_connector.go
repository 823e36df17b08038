package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureBlobConnector is a struct that holds the Azure Blob storage client and implements the BlobConnector interface
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a new azureBlobConnector instance using a connection string.
// It returns the connector or an error if any.
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (documents.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure container: %w", err)
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload writes data under key
func (abc *azureBlobConnector) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	}
	if _, err := abc.client.UploadBuffer(ctx, abc.containerName, key, data, opts); err != nil {
		return apperror.Unavailable(err, "failed to upload blob %s", key)
	}

	abc.logger.Info("blob uploaded", "key", key, "size", len(data))
	return nil
}

// Download reads the blob stored under key
func (abc *azureBlobConnector) Download(ctx context.Context, key string) ([]byte, error) {
	resp, err := abc.client.DownloadStream(ctx, abc.containerName, key, nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return nil, apperror.NotFound("blob", key)
	}
	if err != nil {
		return nil, apperror.Unavailable(err, "failed to download blob %s", key)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the blob stored under key. A missing blob is not an error.
func (abc *azureBlobConnector) Delete(ctx context.Context, key string) error {
	_, err := abc.client.DeleteBlob(ctx, abc.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return apperror.Unavailable(err, "failed to delete blob %s", key)
	}

	abc.logger.Info("blob deleted", "key", key)
	return nil
}
