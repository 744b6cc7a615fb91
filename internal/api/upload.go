package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// size ceilings enforced before any network call - matches what the backend accepts
const (
	MaxImageSize = 2 << 20  // 2MB
	MaxVideoSize = 10 << 20 // 10MB
)

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	videoExtensions = map[string]bool{".mp4": true, ".webm": true, ".mov": true}
)

// Upload is a file attached to a create/update call
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// OpenUpload prepares a local file for upload. The caller is responsible for
// keeping the file open until the request is issued.
func OpenUpload(path string) (*Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat upload: %w", err)
	}

	return &Upload{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Reader:   f,
	}, nil
}

func validateImage(u *Upload) *ClientError {
	if u == nil {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(u.Filename))
	if !imageExtensions[ext] {
		return newValidationError(fmt.Sprintf("unsupported image type %q", ext))
	}
	if u.Size > MaxImageSize {
		return newValidationError("image exceeds the 2MB limit")
	}
	return nil
}

func validateVideo(u *Upload) *ClientError {
	if u == nil {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(u.Filename))
	if !videoExtensions[ext] {
		return newValidationError(fmt.Sprintf("unsupported video type %q", ext))
	}
	if u.Size > MaxVideoSize {
		return newValidationError("video exceeds the 10MB limit")
	}
	return nil
}

type formBody struct {
	body        *bytes.Buffer
	contentType string
}

// encodeForm assembles a multipart/form-data body from plain fields and file
// parts. The boundary (and therefore the content type) is generated by the
// multipart writer.
func encodeForm(fields map[string]string, files map[string]*Upload) (*formBody, *ClientError) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, newInternalError(err, "writing form field")
		}
	}

	for name, upload := range files {
		if upload == nil {
			continue
		}
		part, err := writer.CreateFormFile(name, upload.Filename)
		if err != nil {
			return nil, newInternalError(err, "creating form file")
		}
		if _, err := io.Copy(part, upload.Reader); err != nil {
			return nil, newInternalError(err, "copying upload data")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, newInternalError(err, "finalizing form body")
	}

	return &formBody{
		body:        body,
		contentType: writer.FormDataContentType(),
	}, nil
}
