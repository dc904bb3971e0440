package album

// Album is the metadata record for one photo album. Camera, lens and
// phone are optional shooting details.
type Album struct {
	Slug             string  `gorm:"column:slug;primaryKey" json:"slug"`
	Title            string  `gorm:"column:title" json:"title"`
	Description      string  `gorm:"column:description" json:"description"`
	ShortTitle       string  `gorm:"column:short_title" json:"short_title"`
	Date             string  `gorm:"column:date" json:"date"`
	Camera           *string `gorm:"column:camera" json:"camera"`
	Lens             *string `gorm:"column:lens" json:"lens"`
	Phone            *string `gorm:"column:phone" json:"phone"`
	PreviewImgOneURL string  `gorm:"column:preview_img_one_url" json:"preview_img_one_url"`
	Featured         bool    `gorm:"column:featured" json:"featured"`
	Category         string  `gorm:"column:category" json:"category"`
}

func (Album) TableName() string { return "albums" }

// Content is one photo inside an album, keyed by album slug and image URL.
type Content struct {
	Slug    string `gorm:"column:slug;primaryKey" json:"slug"`
	ImgURL  string `gorm:"column:img_url;primaryKey" json:"img_url"`
	Caption string `gorm:"column:caption" json:"caption"`
}

func (Content) TableName() string { return "album_contents" }

// WithContent is an album and all of its photos, as served by the API.
type WithContent struct {
	Album
	Content []Content `json:"content"`
}
