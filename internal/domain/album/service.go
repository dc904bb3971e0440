package album

import (
	"context"
	"fmt"
	"log"

	"portfolio/internal/domain/asset"
)

// Uploader is the slice of the upload pipeline the album domain needs.
type Uploader interface {
	Upload(ctx context.Context, slug, filename string, data []byte) (*asset.Stored, error)
	EnsureFolder(slug string) error
	MaxBytes() int64
}

// FilePart is one file from a multipart request, already read into memory.
type FilePart struct {
	Name string
	Data []byte
}

// Service handles album business logic, delegating file persistence to
// the upload pipeline.
type Service struct {
	repo     Repository
	uploader Uploader
}

func NewService(repo Repository, uploader Uploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

// MaxBytes reports the pipeline's per-file size ceiling.
func (s *Service) MaxBytes() int64 {
	return s.uploader.MaxBytes()
}

// List returns all albums, newest first.
func (s *Service) List(ctx context.Context) ([]Album, error) {
	return s.repo.List(ctx)
}

// Get returns one album with its content.
func (s *Service) Get(ctx context.Context, slug string) (*WithContent, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	content, err := s.repo.GetContent(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &WithContent{Album: *a, Content: content}, nil
}

// Create makes a new album and its upload directory. ErrSlugTaken when
// the slug is already used.
func (s *Service) Create(ctx context.Context, req *CreateAlbumRequest) (*Album, error) {
	exists, err := s.repo.Exists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugTaken
	}

	if err := s.uploader.EnsureFolder(req.Slug); err != nil {
		return nil, fmt.Errorf("failed to create album directory: %w", err)
	}

	a := &Album{
		Slug:             req.Slug,
		Title:            req.Title,
		Description:      req.Description,
		ShortTitle:       req.ShortTitle,
		Date:             req.Date,
		Camera:           req.Camera,
		Lens:             req.Lens,
		Phone:            req.Phone,
		PreviewImgOneURL: req.PreviewImgOneURL,
		Featured:         req.Featured,
		Category:         req.Category,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	log.Printf("album_created slug=%s", a.Slug)
	return a, nil
}

// CreateWithFiles creates the album, then runs every file through the
// upload pipeline and records each as album content.
func (s *Service) CreateWithFiles(ctx context.Context, req *CreateAlbumRequest, files []FilePart) ([]Content, error) {
	if _, err := s.Create(ctx, req); err != nil {
		return nil, err
	}
	return s.addFiles(ctx, req.Slug, "", files)
}

// AddPhotos uploads files into an existing album. An empty caption gets
// a per-file default.
func (s *Service) AddPhotos(ctx context.Context, slug, caption string, files []FilePart) ([]Content, error) {
	exists, err := s.repo.Exists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAlbumNotFound
	}
	return s.addFiles(ctx, slug, caption, files)
}

func (s *Service) addFiles(ctx context.Context, slug, caption string, files []FilePart) ([]Content, error) {
	added := make([]Content, 0, len(files))
	for _, f := range files {
		stored, err := s.uploader.Upload(ctx, slug, f.Name, f.Data)
		if err != nil {
			return added, err
		}

		c := &Content{
			Slug:    slug,
			ImgURL:  stored.URL,
			Caption: caption,
		}
		if c.Caption == "" {
			c.Caption = fmt.Sprintf("Photo from %s", f.Name)
		}
		if err := s.repo.AddContent(ctx, c); err != nil {
			return added, err
		}
		added = append(added, *c)
	}
	return added, nil
}

// Update applies a partial update to album metadata.
func (s *Service) Update(ctx context.Context, slug string, req *UpdateAlbumRequest) error {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.ShortTitle != nil {
		a.ShortTitle = *req.ShortTitle
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Camera != nil {
		a.Camera = req.Camera
	}
	if req.Lens != nil {
		a.Lens = req.Lens
	}
	if req.Phone != nil {
		a.Phone = req.Phone
	}
	if req.PreviewImgOneURL != nil {
		a.PreviewImgOneURL = *req.PreviewImgOneURL
	}
	if req.Featured != nil {
		a.Featured = *req.Featured
	}
	if req.Category != nil {
		a.Category = *req.Category
	}

	return s.repo.Update(ctx, a)
}

// Delete removes the album and its content rows. Files on disk stay
// until DELETE /folder/:slug is called.
func (s *Service) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}

// RemovePhoto drops one content row by its public URL.
func (s *Service) RemovePhoto(ctx context.Context, slug, imgURL string) error {
	return s.repo.RemoveContent(ctx, slug, imgURL)
}
