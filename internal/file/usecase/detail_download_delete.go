package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"catalog-api/internal/file"
	"catalog-api/pkg/storage"
)

func (uc *implUseCase) Detail(ctx context.Context, id uuid.UUID) (file.File, error) {
	f, err := uc.repo.GetOneFile(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneFile: %v", err)
		return file.File{}, err
	}
	if f.ID == uuid.Nil {
		return file.File{}, file.ErrFileNotFound
	}
	return f, nil
}

// Download opens the blob behind a file. The metadata row wins over the
// stored object for name and content type.
func (uc *implUseCase) Download(ctx context.Context, id uuid.UUID) (file.DownloadOutput, error) {
	f, err := uc.Detail(ctx, id)
	if err != nil {
		return file.DownloadOutput{}, err
	}
	obj, err := uc.storage.Get(ctx, f.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return file.DownloadOutput{}, file.ErrStorageDisabled
		}
		uc.l.Errorf(ctx, "uc.Download Get %s: %v", f.ObjectKey, err)
		return file.DownloadOutput{}, file.ErrObjectUnavailable
	}
	if obj.Size > 0 {
		f.Size = obj.Size
	}
	return file.DownloadOutput{File: f, Body: obj.Body}, nil
}

// Delete drops the blob and then the row. A blob that is already gone does
// not block removing the metadata.
func (uc *implUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	f, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.storage.Remove(ctx, f.ObjectKey); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return file.ErrStorageDisabled
		}
		uc.l.Warnf(ctx, "uc.Delete Remove %s: %v", f.ObjectKey, err)
	}
	if err := uc.repo.DeleteFile(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteFile: %v", err)
		return err
	}
	return nil
}
