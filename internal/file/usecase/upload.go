package usecase

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"

	"catalog-api/internal/file"
	repo "catalog-api/internal/file/repository"
)

const defaultContentType = "application/octet-stream"

// Upload stores the blob first and the metadata row second. A failed insert
// removes the orphaned blob.
func (uc *implUseCase) Upload(ctx context.Context, input file.UploadInput) (file.File, error) {
	name := strings.TrimSpace(path.Base(strings.ReplaceAll(input.Name, `\`, "/")))
	if name == "" || name == "." || name == "/" {
		return file.File{}, file.ErrInvalidName
	}
	if input.Size <= 0 || input.Body == nil {
		return file.File{}, file.ErrEmptyFile
	}
	if !uc.storage.Enabled() {
		return file.File{}, file.ErrStorageDisabled
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	id := uuid.New()
	key := objectPrefix + id.String()
	if err := uc.storage.Put(ctx, key, input.Body, input.Size, contentType); err != nil {
		uc.l.Errorf(ctx, "uc.Upload Put: %v", err)
		return file.File{}, err
	}

	f, err := uc.repo.CreateFile(ctx, repo.CreateFileOptions{
		ID:          id,
		Name:        name,
		ContentType: contentType,
		Size:        input.Size,
		ObjectKey:   key,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upload CreateFile: %v", err)
		if rmErr := uc.storage.Remove(ctx, key); rmErr != nil {
			uc.l.Warnf(ctx, "uc.Upload Remove %s: %v", key, rmErr)
		}
		return file.File{}, err
	}
	return f, nil
}
