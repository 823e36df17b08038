package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
)

const (
	maxImageSize = 5 << 20
	timeLayout   = "02 Jan 2006 15:04 MST"
)

var imageContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// recipientOf returns where user can be notified
func recipientOf(user *users.User) notifications.Recipient {
	return notifications.Recipient{Name: user.Name, Email: user.EmailAddress(), Phone: user.Phone}
}

// notifyUser looks up userID and sends the messages built for it. Lookup failures are logged.
func notifyUser(ctx context.Context, repo users.UserRepository, notifier notifications.Notifier, log logger.Logger, userID string, build func(notifications.Recipient) []notifications.Message) {
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		log.Warn("skipping notification, recipient lookup failed", "userId", userID, "error", err)
		return
	}
	notifier.Notify(ctx, build(recipientOf(user))...)
}

// readUpload reads one uploaded file, enforcing maxSize and the allowed content types.
// The content type is always sniffed from the data; the client's Content-Type header is ignored.
func readUpload(file *multipart.FileHeader, maxSize int64, allowed map[string]struct{}) ([]byte, string, error) {
	if file == nil {
		return nil, "", apperror.FieldValidation("file", "file is required")
	}
	if file.Size <= 0 {
		return nil, "", apperror.FieldValidation("file", "file %s is empty", file.Filename)
	}
	if file.Size > maxSize {
		return nil, "", apperror.FieldValidation("file", "file %s exceeds the %d MB limit", file.Filename, maxSize>>20)
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", file.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", file.Filename, err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", apperror.FieldValidation("file", "file %s exceeds the %d MB limit", file.Filename, maxSize>>20)
	}

	contentType := strings.SplitN(http.DetectContentType(data), ";", 2)[0]
	if _, ok := allowed[contentType]; !ok {
		return nil, "", apperror.FieldValidation("file", "content type %s is not allowed", contentType)
	}
	return data, contentType, nil
}
