package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Staging is the local directory incoming uploads are written to before
// their bytes are copied into the database. Staged files are temporary:
// the upload handler removes them when the request finishes, and the
// sweeper collects anything left behind by crashed requests.
type Staging struct {
	dir string
	now func() time.Time
}

// New ensures the staging directory exists and returns a Staging for it.
func New(dir string) (*Staging, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create staging directory %s: %w", dir, err)
	}
	return &Staging{dir: dir, now: time.Now}, nil
}

// Dir returns the staging directory path.
func (s *Staging) Dir() string {
	return s.dir
}

// Stage picks a collision-resistant destination path for an incoming upload
// and invokes save to write it there. The name combines the arrival
// timestamp in milliseconds with the sanitized original filename, like
// "1699999999999 - photo.jpg". If that path is already taken the name gains
// a random fragment instead of overwriting the earlier upload.
func (s *Staging) Stage(originalName string, save func(dst string) error) (string, error) {
	ms := s.now().UnixMilli()
	name := sanitizeName(originalName)

	path := filepath.Join(s.dir, fmt.Sprintf("%d - %s", ms, name))
	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(s.dir, fmt.Sprintf("%d-%s - %s", ms, uuid.NewString()[:8], name))
	}

	if err := save(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return path, nil
}

// Remove deletes a staged file. A file that is already gone is not an error.
func (s *Staging) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SweepOlderThan deletes staged files whose modification time is older than
// maxAge and reports how many were removed.
func (s *Staging) SweepOlderThan(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read staging directory: %w", err)
	}

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// sanitizeName reduces an upload's original filename to a safe base name.
func sanitizeName(name string) string {
	// Browsers on Windows may send full paths with backslashes
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}
