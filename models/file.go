package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// File is a stored image: the raw bytes plus the content type they arrived
// with and the owning folder's name. Files are immutable once created.
type File struct {
	ID           string `json:"id"`
	Folder       string `json:"folder"`
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	Data         []byte `json:"-"`
	CreatedAt    int64  `json:"created_at"` // Unix timestamp
	UpdatedAt    int64  `json:"updated_at"` // Unix timestamp
}

// Validate checks if the File has valid values.
func (f *File) Validate() error {
	if f.Folder == "" {
		return errors.New("file folder cannot be empty")
	}
	if f.ContentType == "" {
		return errors.New("file content type cannot be empty")
	}
	if len(f.Data) == 0 {
		return errors.New("file data cannot be empty")
	}
	return nil
}

// CreateFile inserts a new File, assigning its id and timestamps.
func (s *Store) CreateFile(file *File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	file.Size = int64(len(file.Data))

	now := time.Now().Unix()
	file.CreatedAt = now
	file.UpdatedAt = now

	query := `
	INSERT INTO files (id, folder, original_name, content_type, size, data, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, file.ID, file.Folder, file.OriginalName, file.ContentType,
		file.Size, file.Data, file.CreatedAt, file.UpdatedAt)
	return err
}

// GetFile retrieves a single File by id, including its bytes.
func (s *Store) GetFile(id string) (*File, error) {
	query := `
	SELECT id, folder, original_name, content_type, size, data, created_at, updated_at
	FROM files
	WHERE id = ?
	`
	row := s.db.QueryRow(query, id)

	var file File
	if err := row.Scan(&file.ID, &file.Folder, &file.OriginalName, &file.ContentType,
		&file.Size, &file.Data, &file.CreatedAt, &file.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

// GetFilesByFolder retrieves all Files whose folder field equals name, in
// storage order. The blob column is left out; folder views only need
// metadata and fetch bytes through GetFile.
func (s *Store) GetFilesByFolder(name string) ([]File, error) {
	query := `
	SELECT id, folder, original_name, content_type, size, created_at, updated_at
	FROM files
	WHERE folder = ?
	`

	rows, err := s.db.Query(query, name)
	if err != nil {
		log.Errorf("Failed to get files for folder %s: %v", name, err)
		return nil, err
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var file File
		if err := rows.Scan(&file.ID, &file.Folder, &file.OriginalName, &file.ContentType,
			&file.Size, &file.CreatedAt, &file.UpdatedAt); err != nil {
			log.Errorf("Failed to scan file row: %v", err)
			continue
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// GetTotalFiles returns the number of stored images.
func (s *Store) GetTotalFiles() (int64, error) {
	return s.countRecord(`SELECT COUNT(*) FROM files`)
}

// GetTotalFileBytes returns the summed size of all stored images.
func (s *Store) GetTotalFileBytes() (int64, error) {
	return s.countRecord(`SELECT COALESCE(SUM(size), 0) FROM files`)
}
