package album

// CreateAlbumRequest is the payload for POST /albums, and the parsed
// form of the album_data field on POST /albums/with-files.
type CreateAlbumRequest struct {
	Slug             string  `json:"slug" binding:"required"`
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	ShortTitle       string  `json:"short_title" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	Camera           *string `json:"camera"`
	Lens             *string `json:"lens"`
	Phone            *string `json:"phone"`
	PreviewImgOneURL string  `json:"preview_img_one_url"`
	Featured         bool    `json:"featured"`
	Category         string  `json:"category" binding:"required"`
}

// UpdateAlbumRequest carries a partial update; only set fields change.
type UpdateAlbumRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ShortTitle       *string `json:"short_title"`
	Date             *string `json:"date"`
	Camera           *string `json:"camera"`
	Lens             *string `json:"lens"`
	Phone            *string `json:"phone"`
	PreviewImgOneURL *string `json:"preview_img_one_url"`
	Featured         *bool   `json:"featured"`
	Category         *string `json:"category"`
}

// RemovePhotoRequest identifies one album photo by its public URL.
type RemovePhotoRequest struct {
	ImgURL string `json:"img_url" binding:"required"`
}
