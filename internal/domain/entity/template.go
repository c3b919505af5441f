package entity

import (
	"time"
)

// Template is an admin-authored downloadable reference file. Its storage
// path is reused on file replacement so a template never leaks objects.
type Template struct {
	ID             string    `json:"id" firestore:"id"`
	Title          string    `json:"title" firestore:"title"`
	Description    string    `json:"description" firestore:"description"`
	Filename       string    `json:"filename" firestore:"filename"`
	Mime           string    `json:"mime" firestore:"mime"`
	Size           int64     `json:"size" firestore:"size"`
	StoragePath    string    `json:"storagePath" firestore:"storagePath"`
	CreatedBy      string    `json:"createdBy,omitempty" firestore:"createdBy"`
	CreatedByEmail string    `json:"createdByEmail,omitempty" firestore:"createdByEmail"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}
