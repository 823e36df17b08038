package documents

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// DocumentRepository defines the interface for DocumentMeta persistence
type DocumentRepository interface {
	// Create adds a new DocumentMeta to the database
	Create(ctx context.Context, doc *DocumentMeta) error
	// GetByID retrieves a DocumentMeta from the database by ID
	GetByID(ctx context.Context, docID string) (*DocumentMeta, error)
	// ListByOwner lists the documents of one dealer or technician, newest first
	ListByOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) ([]*DocumentMeta, error)
	// DeleteByOwner removes all document metadata of an owner
	DeleteByOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) error
}

// BlobConnector is an interface for interacting with blob storage
type BlobConnector interface {
	// Upload stores data under key, replacing any existing blob.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// Download retrieves a blob's content by key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete deletes a blob by key. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}

// DocumentService handles KYC document uploads and downloads
type DocumentService interface {
	// Upload stores the files of the "files" form field as documents of the calling dealer
	// or technician, encrypting them when a key is configured, and moves KYC to SUBMITTED.
	Upload(ctx context.Context, actor *users.Principal, form *multipart.Form) ([]*DocumentMeta, error)

	// ListOwn lists the documents of the calling dealer or technician.
	ListOwn(ctx context.Context, actor *users.Principal) ([]*DocumentMeta, error)

	// ListForOwner lists the documents of a dealer or technician for admin review.
	ListForOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) ([]*DocumentMeta, error)

	// Download returns the decrypted content. Only the owner or an admin may download.
	Download(ctx context.Context, actor *users.Principal, docID string) ([]byte, *DocumentMeta, error)
}
