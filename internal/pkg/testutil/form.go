package testutil

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFile describes one file part of a multipart request
type TestFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// CreateMultipartBody encodes form values and files under fileField and returns the body plus its content type
func CreateMultipartBody(t *testing.T, values map[string]string, fileField string, files ...TestFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		require.NoError(t, writer.WriteField(k, values[k]))
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+f.Name+`"`)
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateForm builds a parsed multipart form holding the given values and files under "files"
func CreateForm(t *testing.T, values map[string]string, files ...TestFile) *multipart.Form {
	t.Helper()

	body, contentType := CreateMultipartBody(t, values, "files", files...)
	_, params, err := parseBoundary(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		Value: make(map[string][]string),
		File:  make(map[string][]*multipart.FileHeader),
	}
}
