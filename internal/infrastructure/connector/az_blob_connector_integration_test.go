//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAzureBlobConnector(t *testing.T) documents.BlobConnector {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	settings := &config.BlobConnectorSettings{
		CloudProvider:    TestCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}

	blobConnector, err := NewAzureBlobConnector(context.Background(), settings, logger)
	require.NoError(t, err)
	return blobConnector
}

func TestAzureBlobConnector_UploadDownloadDelete(t *testing.T) {
	connector := newAzureBlobConnector(t)
	ctx := context.Background()

	key := "kyc/DEALER/" + uuid.NewString() + "/aadhaar.pdf"
	content := []byte("%PDF-1.4 test document")

	require.NoError(t, connector.Upload(ctx, key, content, "application/pdf"))

	downloaded, err := connector.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	require.NoError(t, connector.Delete(ctx, key))

	_, err = connector.Download(ctx, key)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestAzureBlobConnector_DeleteMissingIsNoop(t *testing.T) {
	connector := newAzureBlobConnector(t)

	err := connector.Delete(context.Background(), "missing/"+uuid.NewString())
	assert.NoError(t, err)
}

func TestNewAzureBlobConnector_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewAzureBlobConnector(context.Background(), &config.BlobConnectorSettings{CloudProvider: TestCloudProvider}, logger)
	assert.Error(t, err)
}
