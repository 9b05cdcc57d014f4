package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalkita/rentalkita-backend/internal/services"
)

func setupLocalStorage(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("BASE_URL", "http://localhost:8080")
	require.NoError(t, services.InitStorage())
}

func postUpload(t *testing.T, kind, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if kind != "" {
		require.NoError(t, w.WriteField("type", kind))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	router := gin.New()
	router.POST("/api/uploads", UploadDocument())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadEndpointMissingFile(t *testing.T) {
	setupLocalStorage(t)

	w := postUpload(t, "ktpPenyewa", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File dan tipe dokumen wajib diisi.")
}

func TestUploadEndpointMissingType(t *testing.T) {
	setupLocalStorage(t)

	w := postUpload(t, "", "ktp.jpg", "image/jpeg", []byte("isi"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File dan tipe dokumen wajib diisi.")
}

func TestUploadEndpointUnknownKind(t *testing.T) {
	setupLocalStorage(t)

	w := postUpload(t, "paspor", "ktp.jpg", "image/jpeg", []byte("isi"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tipe dokumen tidak didukung.")
}

func TestUploadEndpointOversize(t *testing.T) {
	setupLocalStorage(t)

	big := bytes.Repeat([]byte("a"), services.MaxDocumentSize+1)
	w := postUpload(t, "ktpPenyewa", "ktp.jpg", "image/jpeg", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Ukuran file maksimal 5MB.")
}

func TestUploadEndpointUnsupportedFormat(t *testing.T) {
	setupLocalStorage(t)

	w := postUpload(t, "ktpPenyewa", "ktp.gif", "image/gif", []byte("GIF89a"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Format file tidak didukung.")
}

func TestUploadEndpointSuccess(t *testing.T) {
	setupLocalStorage(t)

	w := postUpload(t, "simA", "sim.jpg", "image/jpeg", []byte("isi dokumen"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "/uploads/simA/simA-")
	assert.Contains(t, resp.URL, "-sim.jpg")
}

func TestUploadEndpointReplacementGetsFreshURL(t *testing.T) {
	setupLocalStorage(t)

	first := postUpload(t, "ktpPenjamin", "ktp.png", "image/png", []byte("v1"))
	second := postUpload(t, "ktpPenjamin", "ktp.png", "image/png", []byte("v2"))
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.NotEqual(t, a.URL, b.URL)
}
