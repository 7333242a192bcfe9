package file

import (
	"io"
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

// File is the metadata row of an uploaded blob. The bytes live under ObjectKey.
type File struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	ContentType string    `db:"content_type"`
	Size        int64     `db:"size"`
	ObjectKey   string    `db:"object_key"`
	CreatedAt   time.Time `db:"created_at"`
}

// --- UseCase Inputs ---

type UploadInput struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ListInput struct {
	Params query.Params
}

// --- UseCase Outputs ---

type ListOutput struct {
	Page query.Page[File]
}

// DownloadOutput streams a blob. Callers must close Body.
type DownloadOutput struct {
	File File
	Body io.ReadCloser
}
