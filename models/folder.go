package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Folder is a named grouping of images. Files reference it by name, not by
// id, so duplicate names share their contents; renames do not exist.
type Folder struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"` // Unix timestamp
	UpdatedAt int64  `json:"updated_at"` // Unix timestamp
}

// Validate checks if the Folder has valid values.
func (f *Folder) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return errors.New("folder name cannot be empty")
	}
	return nil
}

// CreateFolder adds a new Folder to the database. Duplicate names are
// allowed; files target whichever folders carry the name.
func (s *Store) CreateFolder(folder Folder) error {
	if err := folder.Validate(); err != nil {
		return err
	}

	now := time.Now().Unix()
	folder.CreatedAt = now
	folder.UpdatedAt = now

	query := `
	INSERT INTO folders (name, created_at, updated_at)
	VALUES (?, ?, ?)
	`

	_, err := s.db.Exec(query, folder.Name, folder.CreatedAt, folder.UpdatedAt)
	return err
}

// GetFolders retrieves all Folders from the database in storage order.
func (s *Store) GetFolders() ([]Folder, error) {
	query := `SELECT id, name, created_at, updated_at FROM folders`

	rows, err := s.db.Query(query)
	if err != nil {
		log.Errorf("Failed to get all folders: %v", err)
		return nil, err
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		var folder Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			log.Errorf("Failed to scan folder row: %v", err)
			continue
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return folders, nil
}

// FolderExists checks if at least one Folder carries the given name.
func (s *Store) FolderExists(name string) (bool, error) {
	query := `SELECT 1 FROM folders WHERE name = ? LIMIT 1`
	row := s.db.QueryRow(query, name)
	var exists int
	err := row.Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteFolder removes every Folder with the given name together with all
// Files whose folder field equals it. Both deletes run in one transaction so
// a folder never disappears while its images survive.
func (s *Store) DeleteFolder(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM folders WHERE name = ?`, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFolderNotFound
	}

	if _, err := tx.Exec(`DELETE FROM files WHERE folder = ?`, name); err != nil {
		return err
	}

	return tx.Commit()
}

// GetTotalFolders returns the number of folders for stats and metrics.
func (s *Store) GetTotalFolders() (int64, error) {
	return s.countRecord(`SELECT COUNT(*) FROM folders`)
}
