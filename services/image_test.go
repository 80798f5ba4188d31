package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real *multipart.FileHeader by round-tripping a multipart body.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image_file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File["image_file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestEncodeImageUsesDeclaredContentType(t *testing.T) {
	fh := fileHeader(t, "burger.bin", "image/webp", []byte("abc"))
	assert.Equal(t, "data:image/webp;base64,YWJj", EncodeImage(fh, "https://example.com/x.png"))
}

func TestEncodeImageInfersFromExtension(t *testing.T) {
	fh := fileHeader(t, "burger.PNG", "", []byte("abc"))
	assert.Equal(t, "data:image/png;base64,YWJj", EncodeImage(fh, ""))
}

func TestEncodeImageDefaultsToOctetStream(t *testing.T) {
	fh := fileHeader(t, "burger.zzzunknown", "", []byte{0x01, 0x02})
	assert.Equal(t, "data:application/octet-stream;base64,AQI=", EncodeImage(fh, ""))
}

func TestEncodeImageFallback(t *testing.T) {
	assert.Equal(t, "https://example.com/x.png", EncodeImage(nil, "https://example.com/x.png"))
	assert.Equal(t, "", EncodeImage(nil, ""))

	empty := fileHeader(t, "empty.png", "image/png", nil)
	assert.Equal(t, "https://example.com/x.png", EncodeImage(empty, "https://example.com/x.png"))

	noName := &multipart.FileHeader{Filename: ""}
	assert.Equal(t, "fallback", EncodeImage(noName, "fallback"))
}

func TestMimeTypeByFilenameStripsParams(t *testing.T) {
	assert.Equal(t, "text/plain", mimeTypeByFilename("notes.txt"))
	assert.Equal(t, "image/jpeg", mimeTypeByFilename("photo.jpg"))
}
