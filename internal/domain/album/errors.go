package album

import "errors"

var (
	ErrAlbumNotFound   = errors.New("album not found")
	ErrSlugTaken       = errors.New("album with this slug already exists")
	ErrContentNotFound = errors.New("photo not found in album")
)
