package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestRouter(t *testing.T) (*gin.Engine, Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:project_test_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Project{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	repo := NewRepository(db)
	h := NewHandler(repo)

	r := gin.New()
	root := r.Group("/")
	RegisterPublicRoutes(root, h)
	RegisterProtectedRoutes(root, h)
	return r, repo
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreate(slug string, priority int) CreateProjectRequest {
	return CreateProjectRequest{
		Slug:               slug,
		EnTitle:            "Title " + slug,
		EnShortDescription: "Short en",
		FrTitle:            "Titre " + slug,
		FrShortDescription: "Court fr",
		Techs:              "Go",
		Link:               "https://example.com/" + slug,
		Date:               "2025-01-01",
		Tags:               "backend",
		Priority:           &priority,
	}
}

func TestCreateAndGetProject(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, http.MethodPost, "/dev-projects", validCreate("api", 1))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev-projects/api", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool    `json:"success"`
		Data    Project `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Title api", resp.Data.EnTitle)
}

func TestCreateProjectSlugConflict(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, http.MethodPost, "/dev-projects", validCreate("dup", 1))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, http.MethodPost, "/dev-projects", validCreate("dup", 1))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SLUG_TAKEN")
}

func TestCreateProjectMissingFields(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, http.MethodPost, "/dev-projects", gin.H{"slug": "incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersByPriorityThenDate(t *testing.T) {
	r, _ := setupTestRouter(t)

	older := validCreate("older", 1)
	older.Date = "2024-01-01"
	newer := validCreate("newer", 1)
	newer.Date = "2025-06-01"
	last := validCreate("last", 5)

	for _, req := range []CreateProjectRequest{last, older, newer} {
		w := postJSON(r, http.MethodPost, "/dev-projects", req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev-projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []Project `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Data, 3) {
		// Lowest priority first; same priority breaks on newest date.
		assert.Equal(t, "newer", resp.Data[0].Slug)
		assert.Equal(t, "older", resp.Data[1].Slug)
		assert.Equal(t, "last", resp.Data[2].Slug)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, http.MethodPost, "/dev-projects", validCreate("upd", 1))
	assert.Equal(t, http.StatusCreated, w.Code)

	title := "Renamed"
	w = postJSON(r, http.MethodPut, "/dev-projects/upd", UpdateProjectRequest{EnTitle: &title})
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev-projects/upd", nil))
	var resp struct {
		Data Project `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Data.EnTitle)
	assert.Equal(t, "Titre upd", resp.Data.FrTitle)
}

func TestUpdateProjectNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	title := "x"
	w := postJSON(r, http.MethodPut, "/dev-projects/ghost", UpdateProjectRequest{EnTitle: &title})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, http.MethodPost, "/dev-projects", validCreate("gone", 1))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/dev-projects/gone", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/dev-projects/gone", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
