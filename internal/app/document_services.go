package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/cryptoalg"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
)

// documentService implements the DocumentService interface
type documentService struct {
	transactor     txn.Transactor
	documentRepo   documents.DocumentRepository
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	blobConnector  documents.BlobConnector
	aesProcessor   cryptoalg.AESProcessor
	key            []byte
	maxFileSize    int64
	logger         logger.Logger
}

// NewDocumentService creates a new instance of DocumentService.
// Documents are encrypted when settings carries an encryption key.
func NewDocumentService(
	transactor txn.Transactor,
	documentRepo documents.DocumentRepository,
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	blobConnector documents.BlobConnector,
	aesProcessor cryptoalg.AESProcessor,
	settings *config.DocumentSettings,
	logger logger.Logger,
) (documents.DocumentService, error) {
	key, err := settings.Key()
	if err != nil {
		return nil, err
	}
	return &documentService{
		transactor:     transactor,
		documentRepo:   documentRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		blobConnector:  blobConnector,
		aesProcessor:   aesProcessor,
		key:            key,
		maxFileSize:    settings.MaxFileSize(),
		logger:         logger,
	}, nil
}

// owner is the dealer or technician profile behind a principal
type owner struct {
	ownerType partners.PartnerType
	id        string
	// advance moves the profile to the KYC status that follows an upload.
	// Must run inside a transaction.
	advance func(ctx context.Context) error
}

func (s *documentService) resolveOwner(ctx context.Context, actor *users.Principal) (*owner, error) {
	if actor == nil {
		return nil, apperror.Unauthorized("not authenticated")
	}

	switch actor.Role {
	case users.RoleDealer:
		dealer, err := s.dealerRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		return &owner{
			ownerType: partners.TypeDealer,
			id:        dealer.ID,
			advance: func(ctx context.Context) error {
				current, err := s.dealerRepo.GetByIDForUpdate(ctx, dealer.ID)
				if err != nil {
					return err
				}
				next := current.KYCStatus.AfterUpload()
				if next == current.KYCStatus {
					return nil
				}
				return s.dealerRepo.UpdateKYCStatus(ctx, current.ID, next, "")
			},
		}, nil
	case users.RoleTechnician:
		technician, err := s.technicianRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		return &owner{
			ownerType: partners.TypeTechnician,
			id:        technician.ID,
			advance: func(ctx context.Context) error {
				current, err := s.technicianRepo.GetByIDForUpdate(ctx, technician.ID)
				if err != nil {
					return err
				}
				next := current.KYCStatus.AfterUpload()
				if next == current.KYCStatus {
					return nil
				}
				return s.technicianRepo.UpdateKYCStatus(ctx, current.ID, next, "")
			},
		}, nil
	default:
		return nil, apperror.Forbidden("only dealers and technicians have kyc documents")
	}
}

func parseKind(form *multipart.Form) (documents.Kind, error) {
	kind := documents.KindOther
	if values := form.Value["kind"]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		kind = documents.Kind(strings.ToUpper(strings.TrimSpace(values[0])))
	}
	switch kind {
	case documents.KindAadhaar, documents.KindPAN, documents.KindGSTCertificate,
		documents.KindTradeLicense, documents.KindPhoto, documents.KindOther:
		return kind, nil
	}
	return "", apperror.FieldValidation("kind", "unknown document kind %q", kind)
}

func (s *documentService) Upload(ctx context.Context, actor *users.Principal, form *multipart.Form) ([]*documents.DocumentMeta, error) {
	if form == nil || len(form.File["files"]) == 0 {
		return nil, apperror.FieldValidation("files", "no files provided in upload request")
	}
	kind, err := parseKind(form)
	if err != nil {
		return nil, err
	}
	own, err := s.resolveOwner(ctx, actor)
	if err != nil {
		return nil, err
	}

	// every file is read and checked before anything is stored
	files := form.File["files"]
	metas := make([]*documents.DocumentMeta, 0, len(files))
	payloads := make([][]byte, 0, len(files))
	for _, file := range files {
		data, contentType, err := readUpload(file, s.maxFileSize, documents.AllowedContentTypes)
		if err != nil {
			return nil, err
		}

		meta := documents.NewDocumentMeta(own.ownerType, own.id, actor.UserID, kind, file.Filename, contentType, int64(len(data)))
		if s.key != nil {
			if data, err = s.aesProcessor.Encrypt(data, s.key); err != nil {
				return nil, fmt.Errorf("failed to encrypt %s: %w", file.Filename, err)
			}
			meta.Encrypted = true
		}
		metas = append(metas, meta)
		payloads = append(payloads, data)
	}

	var stored []string
	for i, meta := range metas {
		if err := s.blobConnector.Upload(ctx, meta.StorageKey, payloads[i], meta.ContentType); err != nil {
			s.removeBlobs(ctx, stored)
			return nil, err
		}
		stored = append(stored, meta.StorageKey)
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, meta := range metas {
			if err := s.documentRepo.Create(ctx, meta); err != nil {
				return err
			}
		}
		return own.advance(ctx)
	})
	if err != nil {
		s.removeBlobs(ctx, stored)
		return nil, err
	}

	s.logger.Info("kyc documents uploaded", "ownerType", string(own.ownerType), "ownerId", own.id, "count", len(metas), "kind", string(kind))
	return metas, nil
}

// removeBlobs deletes blobs of an upload that did not complete
func (s *documentService) removeBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.blobConnector.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to remove orphaned document blob", "key", key, "error", err)
		}
	}
}

func (s *documentService) ListOwn(ctx context.Context, actor *users.Principal) ([]*documents.DocumentMeta, error) {
	own, err := s.resolveOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.ListByOwner(ctx, own.ownerType, own.id)
}

func (s *documentService) ListForOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) ([]*documents.DocumentMeta, error) {
	if !ownerType.Valid() {
		return nil, apperror.FieldValidation("ownerType", "ownerType must be DEALER or TECHNICIAN")
	}
	return s.documentRepo.ListByOwner(ctx, ownerType, ownerID)
}

func (s *documentService) Download(ctx context.Context, actor *users.Principal, docID string) ([]byte, *documents.DocumentMeta, error) {
	meta, err := s.documentRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.IsAdmin() && meta.UserID != actor.UserID {
		return nil, nil, apperror.Forbidden("not allowed to download document %s", docID)
	}

	data, err := s.blobConnector.Download(ctx, meta.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	if meta.Encrypted {
		if s.key == nil {
			return nil, nil, apperror.Unavailable(nil, "document %s is encrypted but no key is configured", meta.ID)
		}
		if data, err = s.aesProcessor.Decrypt(data, s.key); err != nil {
			return nil, nil, fmt.Errorf("failed to decrypt document %s: %w", meta.ID, err)
		}
	}
	return data, meta, nil
}
