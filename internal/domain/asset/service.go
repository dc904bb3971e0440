package asset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"
)

// URLBase is the public prefix the static file routes serve under.
const URLBase = "/files"

// Service is the upload pipeline: validate, allocate identity, classify,
// persist the original, derive a thumbnail when the payload is an image,
// then link the asset record. The slug is an opaque namespace; whether an
// album or project row exists for it is deliberately not checked here.
// The asset row keeps the slug, so orphan directories stay discoverable.
//
// The service holds no cross-request state. Two concurrent uploads to the
// same slug get distinct identifiers and cannot conflict on disk.
type Service struct {
	repo     Repository
	store    *Store
	deriver  *Deriver
	maxBytes int64
}

// Stored is what the pipeline hands back for one persisted file.
// ThumbURL is empty when no thumbnail was generated.
type Stored struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	ThumbURL     string `json:"thumb_url,omitempty"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

func NewService(repo Repository, store *Store, deriver *Deriver, maxBytes int64) *Service {
	return &Service{repo: repo, store: store, deriver: deriver, maxBytes: maxBytes}
}

// Upload runs the pipeline for one multipart file part.
//
// Thumbnail derivation is best-effort: corrupt image bytes or a format the
// encoder cannot target are logged and the upload succeeds without a
// thumbnail. A metadata link failure after the bytes are on disk returns
// the Stored result together with ErrLinkFailed so the handler can report
// partial success instead of total failure.
func (s *Service) Upload(ctx context.Context, slug, filename string, data []byte) (*Stored, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrMissingSlug
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	kind, mime := Classify(data)
	if kind == KindRejected {
		return nil, fmt.Errorf("%w: %s", ErrRejectedType, mime)
	}

	id, err := NewID()
	if err != nil {
		return nil, err
	}

	ext := safeExt(filename)
	if ext == "" {
		ext = extForMime(mime)
	}

	originalPath, err := s.store.WriteOriginal(slug, id, ext, data)
	if err != nil {
		return nil, err
	}

	stored := &Stored{
		ID:           id,
		Filename:     id + ext,
		OriginalName: filename,
		URL:          fmt.Sprintf("%s/%s/%s%s", URLBase, slug, id, ext),
		MimeType:     mime,
		Size:         int64(len(data)),
	}

	thumbnailPath := ""
	if kind == KindImage {
		if thumb, derr := s.deriver.Derive(data, ext); derr != nil {
			log.Printf("thumbnail_skipped slug=%s id=%s error=%q", slug, id, derr.Error())
		} else if thumbnailPath, derr = s.store.WriteThumbnail(slug, id, ext, thumb); derr != nil {
			log.Printf("thumbnail_write_failed slug=%s id=%s error=%q", slug, id, derr.Error())
			thumbnailPath = ""
		} else {
			stored.ThumbURL = fmt.Sprintf("%s/%s/%s.thumb%s", URLBase, slug, id, ext)
		}
	}

	record := &Asset{
		ID:            id,
		OwnerSlug:     slug,
		OriginalName:  filename,
		MimeType:      mime,
		OriginalPath:  originalPath,
		ThumbnailPath: thumbnailPath,
		FileURL:       stored.URL,
		ThumbURL:      stored.ThumbURL,
		Size:          stored.Size,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		// Bytes are already durable; do not delete them. The deterministic
		// path (slug + id) leaves the orphan reachable by a reconciliation
		// sweep.
		log.Printf("asset_link_failed slug=%s id=%s error=%q", slug, id, err.Error())
		return stored, fmt.Errorf("%w: %v", ErrLinkFailed, err)
	}

	log.Printf("asset_stored slug=%s id=%s mime=%s size=%d thumb=%t",
		slug, id, mime, stored.Size, stored.ThumbURL != "")
	return stored, nil
}

// Resolve maps a public filename to its absolute disk path.
func (s *Service) Resolve(slug, filename string, thumb bool) (string, error) {
	return s.store.Resolve(slug, filename, thumb)
}

// RemoveFolder deletes an owner's directory tree and its asset records.
func (s *Service) RemoveFolder(ctx context.Context, slug string) error {
	if err := s.store.RemoveOwner(slug); err != nil {
		return err
	}
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("%w: %v", ErrLinkFailed, err)
	}
	return nil
}

// EnsureFolder creates an owner's directory ahead of any upload, so a
// freshly created album has its namespace on disk immediately.
func (s *Service) EnsureFolder(slug string) error {
	return s.store.EnsureOwnerDir(slug)
}

// MaxBytes reports the configured per-file size ceiling.
func (s *Service) MaxBytes() int64 { return s.maxBytes }

// safeExt keeps the submitted extension when it is plain alphanumeric,
// lowercased. Anything else is dropped so the extension cannot smuggle
// path characters into the storage layout.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	if len(ext) > 8 {
		return ""
	}
	return ext
}
