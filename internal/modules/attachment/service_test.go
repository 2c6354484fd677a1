package attachment

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Save_PDF(t *testing.T) {
	svc := NewService(t.TempDir())

	path, name, err := svc.Save(strings.NewReader("%PDF-1.7 dummy"), "application/pdf", "contract.pdf")

	require.NoError(t, err)
	assert.Equal(t, "contract.pdf", name)
	assert.Equal(t, ".pdf", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 dummy", string(data))
}

func TestService_Save_ContentTypeWithCharset(t *testing.T) {
	svc := NewService(t.TempDir())

	path, _, err := svc.Save(strings.NewReader("png-bytes"), "image/png; charset=binary", "logo.png")

	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))
}

func TestService_Save_RejectsUnknownType(t *testing.T) {
	svc := NewService(t.TempDir())

	_, _, err := svc.Save(strings.NewReader("MZ"), "application/x-msdownload", "virus.exe")

	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestService_Save_RejectsOversized(t *testing.T) {
	svc := NewService(t.TempDir())

	big := bytes.NewReader(make([]byte, MaxFileSize+1))
	_, _, err := svc.Save(big, "application/pdf", "huge.pdf")

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestService_Save_RejectsEmpty(t *testing.T) {
	svc := NewService(t.TempDir())

	_, _, err := svc.Save(strings.NewReader(""), "image/jpeg", "empty.jpg")

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestService_Remove_BestEffort(t *testing.T) {
	svc := NewService(t.TempDir())

	path, _, err := svc.Save(strings.NewReader("jpeg"), "image/jpeg", "photo.jpg")
	require.NoError(t, err)

	svc.Remove(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// repeated and empty removals must not panic
	svc.Remove(path)
	svc.Remove("")
}
