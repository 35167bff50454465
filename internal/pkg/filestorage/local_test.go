package filestorage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader constructs a real multipart.FileHeader from in-memory content
func buildFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileGeneratesUniqueNameAndKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	header := buildFileHeader(t, "avatar.png", "fake image bytes")
	path, err := ls.SaveFile(header)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.NotContains(t, path, "avatar")

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(stored))
}

func TestSaveFileRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	header := buildFileHeader(t, "evil.png", "payload")
	header.Filename = "../../etc/passwd"

	_, err = ls.SaveFile(header)
	assert.Error(t, err)
}

func TestSaveFileUsesBaseURLWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	header := buildFileHeader(t, "doc.pdf", "pdf content")
	path, err := ls.SaveFile(header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	header := buildFileHeader(t, "photo.jpg", "content")
	path, err := ls.SaveFile(header)
	require.NoError(t, err)

	require.NoError(t, ls.DeleteFile(path))
	_, statErr := os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(statErr))

	// Second delete of the same file must not fail
	assert.NoError(t, ls.DeleteFile(path))

	// Deleting an empty reference is a no-op
	assert.NoError(t, ls.DeleteFile(""))
}

func TestGetFullPath(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	full := ls.GetFullPath("uploads/abc123.png")
	assert.Equal(t, filepath.Join(dir, "abc123.png"), full)
}
