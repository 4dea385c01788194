package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectRef is the display form of a project embedded in resolved responses.
type ProjectRef struct {
	ID          uuid.UUID
	Name        string
	Description string
}

func (p *Project) Ref() *ProjectRef {
	if p == nil {
		return nil
	}
	return &ProjectRef{ID: p.ID, Name: p.Name, Description: p.Description}
}

type FileType string

const (
	FileTypeFile   FileType = "file"
	FileTypeFolder FileType = "folder"
)

// ProjectFile is a node in a project's file tree. ParentID is nil for roots;
// a non-nil parent always belongs to the same project.
type ProjectFile struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Type      FileType
	ParentID  *uuid.UUID
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
