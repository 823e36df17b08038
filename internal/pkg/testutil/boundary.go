package testutil

import (
	"fmt"
	"mime"
)

func parseBoundary(contentType string) (string, string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", err
	}
	boundary, ok := params["boundary"]
	if !ok {
		return "", "", fmt.Errorf("content type %q has no boundary", contentType)
	}
	return mediaType, boundary, nil
}
