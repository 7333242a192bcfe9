package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"catalog-api/internal/file"
	repo "catalog-api/internal/file/repository"
	"catalog-api/pkg/query"
)

func (r *implRepository) CreateFile(ctx context.Context, opt repo.CreateFileOptions) (file.File, error) {
	f := file.File{
		ID:          opt.ID,
		Name:        opt.Name,
		ContentType: opt.ContentType,
		Size:        opt.Size,
		ObjectKey:   opt.ObjectKey,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	stmt, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(f.ID.String(), f.Name, f.ContentType, f.Size, f.ObjectKey, f.CreatedAt).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateFile"), err)
		return file.File{}, repo.ErrFailedToInsert
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFile"), err)
		return file.File{}, repo.ErrFailedToInsert
	}
	return f, nil
}

func (r *implRepository) GetOneFile(ctx context.Context, id uuid.UUID) (file.File, error) {
	stmt, args, err := r.sb.Select(columns...).From(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneFile"), err)
		return file.File{}, repo.ErrFailedToGet
	}

	var f file.File
	err = r.db.GetContext(ctx, &f, stmt, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return file.File{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneFile"), err)
		return file.File{}, repo.ErrFailedToGet
	}
	return f, nil
}

func (r *implRepository) ListFiles(ctx context.Context, q query.Query[file.File]) ([]file.File, int64, error) {
	items, total, err := r.source.Fetch(ctx, q)
	if err != nil {
		// Cancelled requests are the caller's doing; surface the context error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, ctxErr)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFiles"), err)
		return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return items, total, nil
}

func (r *implRepository) DeleteFile(ctx context.Context, id uuid.UUID) error {
	stmt, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteFile"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteFile"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
