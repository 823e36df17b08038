package documents

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"

	"github.com/google/uuid"
)

// Kind of KYC document
type Kind string

// Document kinds
const (
	KindAadhaar        Kind = "AADHAAR"
	KindPAN            Kind = "PAN"
	KindGSTCertificate Kind = "GST_CERTIFICATE"
	KindTradeLicense   Kind = "TRADE_LICENSE"
	KindPhoto          Kind = "PHOTO"
	KindOther          Kind = "OTHER"
)

// AllowedContentTypes lists the accepted upload types
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// DocumentMeta entity
type DocumentMeta struct {
	ID          string               `validate:"required,uuid4"`
	OwnerType   partners.PartnerType `validate:"required,oneof=DEALER TECHNICIAN"`
	OwnerID     string               `validate:"required,uuid4"`
	UserID      string               `validate:"required,uuid4"`
	Kind        Kind                 `validate:"required,oneof=AADHAAR PAN GST_CERTIFICATE TRADE_LICENSE PHOTO OTHER"`
	Name        string               `validate:"required,min=1,max=255"`
	ContentType string               `validate:"required,max=100"`
	Size        int64                `validate:"required,min=1"`
	StorageKey  string               `validate:"required,max=512"`
	Encrypted   bool
	CreatedAt   time.Time
}

// NewDocumentMeta creates metadata for an uploaded file and derives its storage key
func NewDocumentMeta(ownerType partners.PartnerType, ownerID, userID string, kind Kind, name, contentType string, size int64) *DocumentMeta {
	id := uuid.NewString()
	return &DocumentMeta{
		ID:          id,
		OwnerType:   ownerType,
		OwnerID:     ownerID,
		UserID:      userID,
		Kind:        kind,
		Name:        path.Base(name),
		ContentType: contentType,
		Size:        size,
		StorageKey:  fmt.Sprintf("kyc/%s/%s/%s%s", strings.ToLower(string(ownerType)), ownerID, id, strings.ToLower(path.Ext(name))),
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate for validating DocumentMeta struct
func (d *DocumentMeta) Validate() error {
	return validators.Struct(d)
}
