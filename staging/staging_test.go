package staging

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTo(content []byte) func(dst string) error {
	return func(dst string) error {
		return os.WriteFile(dst, content, 0644)
	}
}

func TestStageNamesFileWithTimestampAndOriginalName(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)

	path, err := st.Stage("photo.jpg", writeTo([]byte("jpeg bytes")))
	assert.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+ - photo\.jpg$`), filepath.Base(path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestStageSameNameSameMillisecondDoesNotCollide(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)

	// Pin the clock so both uploads land in the same millisecond
	frozen := time.Now()
	st.now = func() time.Time { return frozen }

	first, err := st.Stage("photo.jpg", writeTo([]byte("first")))
	assert.NoError(t, err)
	second, err := st.Stage("photo.jpg", writeTo([]byte("second")))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)

	data, err := os.ReadFile(first)
	assert.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
	data, err = os.ReadFile(second)
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestStageSaveFailureLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	assert.NoError(t, err)

	_, err = st.Stage("photo.jpg", func(dst string) error {
		return os.ErrPermission
	})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)

	path, err := st.Stage("cat.png", writeTo([]byte("png")))
	assert.NoError(t, err)

	assert.NoError(t, st.Remove(path))
	assert.NoFileExists(t, path)

	// Removing twice is fine
	assert.NoError(t, st.Remove(path))
}

func TestSweepOlderThan(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	assert.NoError(t, err)

	stale, err := st.Stage("old.png", writeTo([]byte("old")))
	assert.NoError(t, err)
	fresh, err := st.Stage("new.png", writeTo([]byte("new")))
	assert.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	assert.NoError(t, os.Chtimes(stale, past, past))

	removed, err := st.SweepOlderThan(time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "photo.jpg", expected: "photo.jpg"},
		{name: "unix path", input: "/etc/passwd", expected: "passwd"},
		{name: "windows path", input: `C:\Users\me\cat.png`, expected: "cat.png"},
		{name: "parent traversal", input: "../../escape.png", expected: "escape.png"},
		{name: "empty", input: "", expected: "upload"},
		{name: "dot only", input: ".", expected: "upload"},
		{name: "control characters", input: "ca\x00t.png", expected: "cat.png"},
		{name: "name with spaces", input: "my holiday photo.jpg", expected: "my holiday photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}
