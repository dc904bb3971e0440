package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSlugTaken       = errors.New("project with this slug already exists")
)
