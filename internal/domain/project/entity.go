package project

// Project is one portfolio development project. The slug doubles as the
// primary key and the public identifier.
type Project struct {
	Slug               string `gorm:"column:slug;primaryKey" json:"slug"`
	EnTitle            string `gorm:"column:en_title" json:"en_title"`
	EnShortDescription string `gorm:"column:en_short_description" json:"en_short_description"`
	FrTitle            string `gorm:"column:fr_title" json:"fr_title"`
	FrShortDescription string `gorm:"column:fr_short_description" json:"fr_short_description"`
	Techs              string `gorm:"column:techs" json:"techs"`
	Link               string `gorm:"column:link" json:"link"`
	Date               string `gorm:"column:date" json:"date"`
	Tags               string `gorm:"column:tags" json:"tags"`
	Priority           int    `gorm:"column:priority;default:0" json:"priority"`
}

func (Project) TableName() string { return "dev_projects" }
