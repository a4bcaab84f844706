package media_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alligator-app/backend/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, fileName, body string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", fileName)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(body))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/post", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestSaveStoresFileUnderTimestampedName(t *testing.T) {
	dir := t.TempDir()
	storage, err := media.NewDiskStorage(dir)
	require.NoError(t, err)

	path, err := storage.Save(uploadHeader(t, "gator.png", "png-bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/images/\d+-gator\.png$`), path)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/images/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveStripsClientDirectories(t *testing.T) {
	dir := t.TempDir()
	storage, err := media.NewDiskStorage(dir)
	require.NoError(t, err)

	path, err := storage.Save(uploadHeader(t, "../../escape.png", "x"))
	require.NoError(t, err)

	assert.NotContains(t, path, "..")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-escape.png"))
}

func TestSaveFailureReturnsNoPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	storage, err := media.NewDiskStorage(dir)
	require.NoError(t, err)

	// Losing the directory between construction and upload makes the
	// write fail; no servable path may be reported
	require.NoError(t, os.RemoveAll(dir))

	path, err := storage.Save(uploadHeader(t, "gator.png", "png-bytes"))
	require.Error(t, err)
	assert.Empty(t, path)
}

func TestNewDiskStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	_, err := media.NewDiskStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
