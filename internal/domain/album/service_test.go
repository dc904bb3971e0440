package album

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"portfolio/internal/domain/asset"
)

// fakeUploader records calls instead of touching disk.
type fakeUploader struct {
	uploads []string
	folders []string
	err     error
	max     int64
}

func (f *fakeUploader) Upload(ctx context.Context, slug, filename string, data []byte) (*asset.Stored, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads = append(f.uploads, slug+"/"+filename)
	return &asset.Stored{
		ID:           fmt.Sprintf("id-%d", len(f.uploads)),
		Filename:     fmt.Sprintf("id-%d.jpg", len(f.uploads)),
		OriginalName: filename,
		URL:          fmt.Sprintf("/files/%s/id-%d.jpg", slug, len(f.uploads)),
		MimeType:     "image/jpeg",
		Size:         int64(len(data)),
	}, nil
}

func (f *fakeUploader) EnsureFolder(slug string) error {
	f.folders = append(f.folders, slug)
	return f.err
}

func (f *fakeUploader) MaxBytes() int64 { return f.max }

func setupTestService(t *testing.T) (*Service, *fakeUploader, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:album_test_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Album{}, &Content{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	uploader := &fakeUploader{}
	return NewService(NewRepository(db), uploader), uploader, db
}

func newCreateRequest(slug string) *CreateAlbumRequest {
	return &CreateAlbumRequest{
		Slug:        slug,
		Title:       "Test Album",
		Description: "An album for tests",
		ShortTitle:  "Test",
		Date:        "2025-01-01",
		Category:    "street",
	}
}

func TestCreateAlbumMakesFolder(t *testing.T) {
	svc, uploader, _ := setupTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, newCreateRequest("summer"))
	assert.NoError(t, err)
	assert.Equal(t, "summer", a.Slug)
	assert.Equal(t, []string{"summer"}, uploader.folders)
}

func TestCreateAlbumSlugTaken(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCreateRequest("dup"))
	assert.NoError(t, err)

	_, err = svc.Create(ctx, newCreateRequest("dup"))
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestGetAlbumWithContent(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCreateRequest("walk"))
	assert.NoError(t, err)
	assert.NoError(t, db.Create(&Content{Slug: "walk", ImgURL: "/files/walk/a.jpg", Caption: "first"}).Error)

	got, err := svc.Get(ctx, "walk")
	assert.NoError(t, err)
	assert.Equal(t, "walk", got.Slug)
	assert.Len(t, got.Content, 1)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrAlbumNotFound)
}

func TestCreateWithFilesRecordsContent(t *testing.T) {
	svc, uploader, db := setupTestService(t)
	ctx := context.Background()

	files := []FilePart{
		{Name: "one.jpg", Data: []byte("a")},
		{Name: "two.jpg", Data: []byte("b")},
	}
	added, err := svc.CreateWithFiles(ctx, newCreateRequest("batch"), files)
	assert.NoError(t, err)
	assert.Len(t, added, 2)
	assert.Len(t, uploader.uploads, 2)
	// Default per-file caption when none is given.
	assert.Equal(t, "Photo from one.jpg", added[0].Caption)

	var count int64
	db.Model(&Content{}).Where("slug = ?", "batch").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestAddPhotosRequiresExistingAlbum(t *testing.T) {
	svc, _, _ := setupTestService(t)

	_, err := svc.AddPhotos(context.Background(), "ghost", "", []FilePart{{Name: "x.jpg", Data: []byte("x")}})
	assert.ErrorIs(t, err, ErrAlbumNotFound)
}

func TestAddPhotosSharedCaption(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCreateRequest("trip"))
	assert.NoError(t, err)

	added, err := svc.AddPhotos(ctx, "trip", "On the road", []FilePart{
		{Name: "a.jpg", Data: []byte("a")},
		{Name: "b.jpg", Data: []byte("b")},
	})
	assert.NoError(t, err)
	assert.Len(t, added, 2)
	for _, c := range added {
		assert.Equal(t, "On the road", c.Caption)
	}
}

func TestAddPhotosUploadFailureReturnsPartialProgress(t *testing.T) {
	svc, uploader, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCreateRequest("partial"))
	assert.NoError(t, err)

	uploader.err = asset.ErrRejectedType
	added, err := svc.AddPhotos(ctx, "partial", "", []FilePart{{Name: "bad.bin", Data: []byte("x")}})
	assert.ErrorIs(t, err, asset.ErrRejectedType)
	assert.Empty(t, added)
}

func TestUpdateAlbumPartial(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCreateRequest("upd"))
	assert.NoError(t, err)

	title := "New Title"
	featured := true
	camera := "X100V"
	assert.NoError(t, svc.Update(ctx, "upd", &UpdateAlbumRequest{
		Title:    &title,
		Featured: &featured,
		Camera:   &camera,
	}))

	got, err := svc.Get(ctx, "upd")
	assert.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.True(t, got.Featured)
	assert.Equal(t, "X100V", *got.Camera)
	// Untouched fields survive.
	assert.Equal(t, "An album for tests", got.Description)

	assert.ErrorIs(t, svc.Update(ctx, "missing", &UpdateAlbumRequest{Title: &title}), ErrAlbumNotFound)
}

func TestDeleteAlbumRemovesContentRows(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	_, err := svc.CreateWithFiles(ctx, newCreateRequest("del"), []FilePart{{Name: "a.jpg", Data: []byte("a")}})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, "del"))

	var count int64
	db.Model(&Content{}).Where("slug = ?", "del").Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(ctx, "del"), ErrAlbumNotFound)
}

func TestRemovePhoto(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	added, err := svc.CreateWithFiles(ctx, newCreateRequest("rm"), []FilePart{{Name: "a.jpg", Data: []byte("a")}})
	assert.NoError(t, err)

	assert.NoError(t, svc.RemovePhoto(ctx, "rm", added[0].ImgURL))
	assert.ErrorIs(t, svc.RemovePhoto(ctx, "rm", added[0].ImgURL), ErrContentNotFound)
}
