package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// contentService implements the ContentService interface
type contentService struct {
	contentRepo   marketing.ContentRepository
	blobConnector documents.BlobConnector
	logger        logger.Logger
	now           func() time.Time
}

// NewContentService creates a new instance of ContentService
func NewContentService(contentRepo marketing.ContentRepository, blobConnector documents.BlobConnector, logger logger.Logger) (marketing.ContentService, error) {
	return &contentService{
		contentRepo:   contentRepo,
		blobConnector: blobConnector,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *contentService) Create(ctx context.Context, input *marketing.Input) (*marketing.Content, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	content := marketing.NewContent(input)
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info("marketing content created", "contentId", content.ID, "kind", string(content.Kind))
	return content, nil
}

func (s *contentService) Update(ctx context.Context, contentID string, input *marketing.Input) (*marketing.Content, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	content.Apply(input, s.now())
	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentService) GetByID(ctx context.Context, contentID string) (*marketing.Content, error) {
	return s.contentRepo.GetByID(ctx, contentID)
}

func (s *contentService) List(ctx context.Context, query *marketing.Query) ([]*marketing.Content, int64, error) {
	if query == nil {
		query = &marketing.Query{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.contentRepo.List(ctx, query)
}

func (s *contentService) Active(ctx context.Context, kind marketing.Kind) ([]*marketing.Content, error) {
	switch kind {
	case "", marketing.KindBanner, marketing.KindBlog, marketing.KindPromotion, marketing.KindTestimonial:
	default:
		return nil, apperror.FieldValidation("kind", "unknown content kind %q", kind)
	}
	return s.contentRepo.ListActive(ctx, kind, s.now())
}

func (s *contentService) SetPublished(ctx context.Context, contentID string, input *marketing.PublishInput) (*marketing.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	content.Published = input.Published
	content.UpdatedAt = s.now()
	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info("marketing content publish state changed", "contentId", content.ID, "published", content.Published)
	return content, nil
}

func (s *contentService) DeleteByID(ctx context.Context, contentID string) error {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteByID(ctx, content.ID); err != nil {
		return err
	}
	if content.ImageKey != "" {
		if err := s.blobConnector.Delete(ctx, content.ImageKey); err != nil {
			s.logger.Warn("failed to delete content image", "contentId", content.ID, "error", err)
		}
	}
	return nil
}

func (s *contentService) UploadImage(ctx context.Context, contentID string, file *multipart.FileHeader) (*marketing.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	data, contentType, err := readUpload(file, maxImageSize, imageContentTypes)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("marketing/%s/image%s", content.ID, imageExtension(contentType))
	if err := s.blobConnector.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	if content.ImageKey != "" && content.ImageKey != key {
		if err := s.blobConnector.Delete(ctx, content.ImageKey); err != nil {
			s.logger.Warn("failed to delete previous content image", "contentId", content.ID, "error", err)
		}
	}

	content.ImageKey = key
	content.UpdatedAt = s.now()
	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentService) Image(ctx context.Context, contentID string) ([]byte, string, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, "", err
	}
	return downloadImage(ctx, s.blobConnector, "content", content.ID, content.ImageKey)
}
