package services

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const defaultImageMime = "application/octet-stream"

// EncodeImage turns an uploaded file into a "data:<mime>;base64,..." URL.
// Without a usable upload (nil, no filename, empty or unreadable content) it returns fallback.
func EncodeImage(fh *multipart.FileHeader, fallback string) string {
	if dataURL := uploadDataURL(fh); dataURL != "" {
		return dataURL
	}
	return fallback
}

func uploadDataURL(fh *multipart.FileHeader) string {
	if fh == nil || fh.Filename == "" {
		return ""
	}
	f, err := fh.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil || len(content) == 0 {
		return ""
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mimeTypeByFilename(fh.Filename)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

func mimeTypeByFilename(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return defaultImageMime
	}
	// "text/plain; charset=utf-8" -> "text/plain"
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
