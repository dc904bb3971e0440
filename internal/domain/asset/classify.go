package asset

import (
	"bytes"
	"net/http"
	"strings"
)

// Kind is the classification of an uploaded payload.
type Kind int

const (
	// KindRejected payloads abort the pipeline before any write.
	KindRejected Kind = iota
	// KindImage payloads get a thumbnail derived after storage.
	KindImage
	// KindOther payloads are stored as-is (videos, documents).
	KindOther
)

// allowedOtherTypes are non-image MIME types accepted for storage.
var allowedOtherTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"application/pdf": true,
	"text/plain":      true,
}

// Classify decides what an upload is from its leading bytes. The client's
// declared Content-Type is attacker-controlled and never consulted; only
// the byte signature gates storage and thumbnail decisions.
func Classify(data []byte) (Kind, string) {
	if mime, ok := sniffImage(data); ok {
		return KindImage, mime
	}

	mime := http.DetectContentType(data)
	mime = strings.Split(mime, ";")[0]
	mime = strings.TrimSpace(mime)

	if allowedOtherTypes[mime] {
		return KindOther, mime
	}
	return KindRejected, mime
}

// sniffImage matches the magic bytes of the image formats the thumbnail
// pipeline understands: JPEG, PNG, GIF, WebP and BMP.
func sniffImage(data []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg", true
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}):
		return "image/png", true
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif", true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp", true
	case bytes.HasPrefix(data, []byte("BM")):
		return "image/bmp", true
	}
	return "", false
}

// extForMime maps a detected MIME type to a filename extension, used when
// the submitted filename carries none.
func extForMime(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "application/pdf":
		return ".pdf"
	case "text/plain":
		return ".txt"
	default:
		return ".bin"
	}
}
