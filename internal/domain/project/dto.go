package project

// CreateProjectRequest is the payload for POST /dev-projects.
type CreateProjectRequest struct {
	Slug               string `json:"slug" binding:"required"`
	EnTitle            string `json:"en_title" binding:"required"`
	EnShortDescription string `json:"en_short_description" binding:"required"`
	FrTitle            string `json:"fr_title" binding:"required"`
	FrShortDescription string `json:"fr_short_description" binding:"required"`
	Techs              string `json:"techs" binding:"required"`
	Link               string `json:"link" binding:"required"`
	Date               string `json:"date" binding:"required"`
	Tags               string `json:"tags" binding:"required"`
	Priority           *int   `json:"priority"`
}

// UpdateProjectRequest carries a partial update; only set fields change.
type UpdateProjectRequest struct {
	EnTitle            *string `json:"en_title"`
	EnShortDescription *string `json:"en_short_description"`
	FrTitle            *string `json:"fr_title"`
	FrShortDescription *string `json:"fr_short_description"`
	Techs              *string `json:"techs"`
	Link               *string `json:"link"`
	Date               *string `json:"date"`
	Tags               *string `json:"tags"`
	Priority           *int    `json:"priority"`
}
