package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	bucket string
	key    string
	body   string
	size   int64
	opts   minio.PutObjectOptions
}

type fakeObjects struct {
	calls []putCall
	err   error
}

func (f *fakeObjects) PutObject(_ context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	data, _ := io.ReadAll(reader)
	f.calls = append(f.calls, putCall{bucket: bucket, key: key, body: string(data), size: size, opts: opts})
	return minio.UploadInfo{Bucket: bucket, Key: key, Size: size}, nil
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		upload  Upload
		wantErr error
	}{
		{"jpeg", Upload{ContentType: "image/jpeg", Size: 10}, nil},
		{"png with params", Upload{ContentType: "image/PNG; charset=binary", Size: 10}, nil},
		{"gif", Upload{ContentType: "image/gif", Size: 10}, nil},
		{"webp at limit", Upload{ContentType: "image/webp", Size: MaxUploadSize}, nil},
		{"svg rejected", Upload{ContentType: "image/svg+xml", Size: 10}, ErrUnsupportedType},
		{"pdf rejected", Upload{ContentType: "application/pdf", Size: 10}, ErrUnsupportedType},
		{"too large", Upload{ContentType: "image/png", Size: MaxUploadSize + 1}, ErrTooLarge},
		{"empty", Upload{ContentType: "image/png", Size: 0}, ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.upload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsClientError(err))
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "uploads/u-1/abc.jpg", ObjectKey("u-1", "abc", "image/jpeg"))
	assert.Equal(t, "uploads/u-1/abc.webp", ObjectKey("u-1", "abc", "image/webp"))
}

func TestPut(t *testing.T) {
	objects := &fakeObjects{}
	store := NewStore(objects, "media", "http://localhost:9000/media/")
	store.newID = func() string { return "fixed-id" }

	url, err := store.Put(context.Background(), "user-1", Upload{
		Filename:    "../../photo.png",
		ContentType: "image/png",
		Size:        5,
		Body:        strings.NewReader("hello world"),
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/media/uploads/user-1/fixed-id.png", url)
	require.Len(t, objects.calls, 1)
	call := objects.calls[0]
	assert.Equal(t, "media", call.bucket)
	assert.Equal(t, "uploads/user-1/fixed-id.png", call.key)
	assert.Equal(t, "hello", call.body, "body is limited to the declared size")
	assert.Equal(t, "image/png", call.opts.ContentType)
	assert.Equal(t, "photo.png", call.opts.UserMetadata["original-name"])
}

func TestPutRejectsInvalid(t *testing.T) {
	objects := &fakeObjects{}
	store := NewStore(objects, "media", "http://localhost:9000/media")

	_, err := store.Put(context.Background(), "user-1", Upload{ContentType: "text/html", Size: 5, Body: strings.NewReader("<p>")})
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, objects.calls)
}

func TestPutStoreError(t *testing.T) {
	store := NewStore(&fakeObjects{err: errors.New("bucket gone")}, "media", "http://localhost:9000/media")

	_, err := store.Put(context.Background(), "user-1", Upload{ContentType: "image/gif", Size: 3, Body: strings.NewReader("gif")})
	require.Error(t, err)
	assert.False(t, IsClientError(err))
}

func TestPutDisabled(t *testing.T) {
	var store *Store

	_, err := store.Put(context.Background(), "user-1", Upload{ContentType: "image/gif", Size: 3, Body: strings.NewReader("gif")})
	require.ErrorIs(t, err, ErrDisabled)
}
