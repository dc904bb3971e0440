package album

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHandlerRouter(t *testing.T, maxBytes int64) (*gin.Engine, *Service, *fakeUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, uploader, _ := setupTestService(t)
	uploader.max = maxBytes
	h := NewHandler(svc)

	r := gin.New()
	root := r.Group("/")
	RegisterPublicRoutes(root, h)
	RegisterProtectedRoutes(root, h)
	return r, svc, uploader
}

func multipartPhotos(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			t.Fatal(err)
		}
	}
	for name, data := range files {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

func TestAddPhotosOversizedPartRejectedBeforeUpload(t *testing.T) {
	r, svc, uploader := setupHandlerRouter(t, 1024)

	_, err := svc.Create(context.Background(), newCreateRequest("trip"))
	assert.NoError(t, err)

	// Within the body bound, over the per-file ceiling: the declared part
	// size rejects it before anything is buffered or uploaded.
	body, contentType := multipartPhotos(t, nil, map[string][]byte{
		"big.jpg": make([]byte, 4096),
	})
	req := httptest.NewRequest(http.MethodPut, "/albums/trip/photos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_TOO_LARGE")
	assert.Empty(t, uploader.uploads)
}

func TestAddPhotosOversizedBodyRejectedAtParse(t *testing.T) {
	r, svc, uploader := setupHandlerRouter(t, 1024)

	_, err := svc.Create(context.Background(), newCreateRequest("trip"))
	assert.NoError(t, err)

	// Past the whole-body bound: the capped reader trips mid-parse.
	body, contentType := multipartPhotos(t, nil, map[string][]byte{
		"huge.jpg": make([]byte, 2<<20),
	})
	req := httptest.NewRequest(http.MethodPut, "/albums/trip/photos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_TOO_LARGE")
	assert.Empty(t, uploader.uploads)
}

func TestCreateWithFilesOversizedPartDoesNotCreateAlbum(t *testing.T) {
	r, svc, uploader := setupHandlerRouter(t, 1024)

	body, contentType := multipartPhotos(t,
		map[string]string{"album_data": `{"slug":"never","title":"t","description":"d","short_title":"s","date":"2025-01-01","category":"street"}`},
		map[string][]byte{"big.jpg": make([]byte, 4096)},
	)
	req := httptest.NewRequest(http.MethodPost, "/albums/with-files", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, uploader.uploads)

	// The size check runs before the album row is written.
	_, err := svc.Get(context.Background(), "never")
	assert.ErrorIs(t, err, ErrAlbumNotFound)
}

func TestAddPhotosWithinLimitPasses(t *testing.T) {
	r, svc, uploader := setupHandlerRouter(t, 1024)

	_, err := svc.Create(context.Background(), newCreateRequest("trip"))
	assert.NoError(t, err)

	body, contentType := multipartPhotos(t, nil, map[string][]byte{
		"ok.jpg": make([]byte, 512),
	})
	req := httptest.NewRequest(http.MethodPut, "/albums/trip/photos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, uploader.uploads, 1)
}
