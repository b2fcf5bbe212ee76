package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	got []byte
	url string
	err error
}

func (f *fakeUploader) UploadPicture(ctx context.Context, file io.Reader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.got = data
	return f.url, f.err
}

func stringBody(s string) io.Reader {
	return strings.NewReader(s)
}

func multipartPicture(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="lunch.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadPicture(t *testing.T) {
	uploader := &fakeUploader{url: "https://res.cloudinary.com/demo/image/upload/meals/lunch.png"}
	h := NewUploadHandler(uploader, zerolog.Nop())

	body, contentType := multipartPicture(t, "picture", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/meals/picture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadPicture(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uploader.url, resp.URL)
	assert.Equal(t, []byte("png-bytes"), uploader.got)
}

func TestUploadPictureRejects(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		contentType string
		uploader    PictureUploader
		want        int
	}{
		{"not configured", "picture", "image/png", nil, http.StatusServiceUnavailable},
		{"wrong field", "file", "image/png", &fakeUploader{}, http.StatusBadRequest},
		{"not an image", "picture", "text/plain", &fakeUploader{}, http.StatusBadRequest},
		{"upload fails", "picture", "image/jpeg", &fakeUploader{err: errors.New("boom")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUploadHandler(tt.uploader, zerolog.Nop())
			body, contentType := multipartPicture(t, tt.field, tt.contentType, []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/api/meals/picture", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			h.UploadPicture(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestUploadPictureNotMultipart(t *testing.T) {
	h := NewUploadHandler(&fakeUploader{}, zerolog.Nop())
	req := httptest.NewRequest(http.MethodPost, "/api/meals/picture", stringBody(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.UploadPicture(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
