package repository

import "github.com/google/uuid"

// CreateFileOptions carries the ID so it can match the object key chosen upstream.
type CreateFileOptions struct {
	ID          uuid.UUID
	Name        string
	ContentType string
	Size        int64
	ObjectKey   string
}
