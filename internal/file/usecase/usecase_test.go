package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"catalog-api/internal/file"
	repo "catalog-api/internal/file/repository"
	"catalog-api/internal/file/usecase"
	"catalog-api/internal/model"
	"catalog-api/pkg/query"
	"catalog-api/pkg/storage"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockStorage keeps blobs in a map.
type mockStorage struct {
	disabled  bool
	objects   map[string][]byte
	types     map[string]string
	putErr    error
	removeErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *mockStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key], m.types[key] = b, contentType
	return nil
}

func (m *mockStorage) Get(ctx context.Context, key string) (storage.Object, error) {
	if m.disabled {
		return storage.Object{}, storage.ErrDisabled
	}
	b, ok := m.objects[key]
	if !ok {
		return storage.Object{}, errors.New("no such key")
	}
	return storage.Object{Body: io.NopCloser(bytes.NewReader(b)), ContentType: m.types[key], Size: int64(len(b))}, nil
}

func (m *mockStorage) Remove(ctx context.Context, key string) error {
	if m.disabled {
		return storage.ErrDisabled
	}
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.objects, key)
	return nil
}

func (m *mockStorage) Enabled() bool { return !m.disabled }

type mockRepo struct {
	items     []file.File
	createErr error
}

func (m *mockRepo) CreateFile(ctx context.Context, opt repo.CreateFileOptions) (file.File, error) {
	if m.createErr != nil {
		return file.File{}, m.createErr
	}
	f := file.File{ID: opt.ID, Name: opt.Name, ContentType: opt.ContentType, Size: opt.Size, ObjectKey: opt.ObjectKey, CreatedAt: time.Now()}
	m.items = append(m.items, f)
	return f, nil
}

func (m *mockRepo) GetOneFile(ctx context.Context, id uuid.UUID) (file.File, error) {
	for _, f := range m.items {
		if f.ID == id {
			return f, nil
		}
	}
	return file.File{}, nil
}

func (m *mockRepo) ListFiles(ctx context.Context, q query.Query[file.File]) ([]file.File, int64, error) {
	return query.NewSliceSource(m.items).Fetch(ctx, q)
}

func (m *mockRepo) DeleteFile(ctx context.Context, id uuid.UUID) error {
	for i, f := range m.items {
		if f.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

func newUseCase(t *testing.T, r *mockRepo, st *mockStorage) file.UseCase {
	t.Helper()
	uc, err := usecase.New(r, st, &mockLogger{}, model.QueryOptions{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc
}

func TestUpload(t *testing.T) {
	storeErr := errors.New("bucket unreachable")
	tcs := map[string]struct {
		input    file.UploadInput
		disabled bool
		putErr   error
		wantErr  error
		wantName string
		wantType string
	}{
		"Stored": {
			input:    file.UploadInput{Name: "report.csv", ContentType: "text/csv", Size: 5, Body: strings.NewReader("a,b\n1")},
			wantName: "report.csv", wantType: "text/csv",
		},
		"Path is stripped and type defaulted": {
			input:    file.UploadInput{Name: `C:\Users\me\photo.jpg`, Size: 3, Body: strings.NewReader("jpg")},
			wantName: "photo.jpg", wantType: "application/octet-stream",
		},
		"Blank name": {
			input:   file.UploadInput{Name: " ", Size: 1, Body: strings.NewReader("x")},
			wantErr: file.ErrInvalidName,
		},
		"Empty body": {
			input:   file.UploadInput{Name: "empty.txt", Size: 0, Body: strings.NewReader("")},
			wantErr: file.ErrEmptyFile,
		},
		"Storage disabled": {
			input:    file.UploadInput{Name: "a.txt", Size: 1, Body: strings.NewReader("x")},
			disabled: true,
			wantErr:  file.ErrStorageDisabled,
		},
		"Storage failure": {
			input:   file.UploadInput{Name: "a.txt", Size: 1, Body: strings.NewReader("x")},
			putErr:  storeErr,
			wantErr: storeErr,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, st := &mockRepo{}, newMockStorage()
			st.disabled, st.putErr = tc.disabled, tc.putErr
			got, err := newUseCase(t, r, st).Upload(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				if len(r.items) != 0 {
					t.Errorf("no metadata should be written on failure")
				}
				return
			}
			if got.Name != tc.wantName || got.ContentType != tc.wantType {
				t.Errorf("unexpected file: %+v", got)
			}
			if got.ObjectKey != "files/"+got.ID.String() {
				t.Errorf("object key %q does not follow the id", got.ObjectKey)
			}
			if _, ok := st.objects[got.ObjectKey]; !ok {
				t.Errorf("blob not stored under %s", got.ObjectKey)
			}
		})
	}
}

func TestUploadRollsBackBlob(t *testing.T) {
	r, st := &mockRepo{createErr: errors.New("insert failed")}, newMockStorage()
	_, err := newUseCase(t, r, st).Upload(context.Background(), file.UploadInput{Name: "a.txt", Size: 1, Body: strings.NewReader("x")})
	if !errors.Is(err, r.createErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if len(st.objects) != 0 {
		t.Errorf("orphaned blob left behind: %v", st.objects)
	}
}

func TestDownloadDelete(t *testing.T) {
	r, st := &mockRepo{}, newMockStorage()
	uc := newUseCase(t, r, st)
	ctx := context.Background()

	f, err := uc.Upload(ctx, file.UploadInput{Name: "hello.txt", ContentType: "text/plain", Size: 5, Body: strings.NewReader("hello")})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	out, err := uc.Download(ctx, f.ID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	body, _ := io.ReadAll(out.Body)
	out.Body.Close()
	if string(body) != "hello" || out.File.Name != "hello.txt" || out.File.Size != 5 {
		t.Errorf("unexpected download: %q %+v", body, out.File)
	}

	if _, err := uc.Download(ctx, uuid.New()); !errors.Is(err, file.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	delete(st.objects, f.ObjectKey)
	if _, err := uc.Download(ctx, f.ID); !errors.Is(err, file.ErrObjectUnavailable) {
		t.Errorf("expected ErrObjectUnavailable for a missing blob, got %v", err)
	}

	st.removeErr = errors.New("already gone")
	if err := uc.Delete(ctx, f.ID); err != nil {
		t.Fatalf("Delete should tolerate a missing blob: %v", err)
	}
	if _, err := uc.Detail(ctx, f.ID); !errors.Is(err, file.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound after delete, got %v", err)
	}

	g, _ := uc.Upload(ctx, file.UploadInput{Name: "b.txt", Size: 1, Body: strings.NewReader("b")})
	st.disabled = true
	if _, err := uc.Download(ctx, g.ID); !errors.Is(err, file.ErrStorageDisabled) {
		t.Errorf("expected ErrStorageDisabled, got %v", err)
	}
	if err := uc.Delete(ctx, g.ID); !errors.Is(err, file.ErrStorageDisabled) {
		t.Errorf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestList(t *testing.T) {
	r, st := &mockRepo{}, newMockStorage()
	uc := newUseCase(t, r, st)
	ctx := context.Background()
	for _, name := range []string{"b.png", "a.png", "c.txt"} {
		if _, err := uc.Upload(ctx, file.UploadInput{Name: name, Size: 1, Body: strings.NewReader("x")}); err != nil {
			t.Fatalf("Upload: %v", err)
		}
	}

	out, err := uc.List(ctx, file.ListInput{Params: query.Params{Filters: map[string][]string{"name": {".png"}}, Limit: 10}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Page.Total != 2 || out.Page.Items[0].Name != "a.png" || out.Page.Items[1].Name != "b.png" {
		t.Errorf("unexpected page: %+v", out.Page)
	}
}
