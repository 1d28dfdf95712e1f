// Package media stores uploaded files under the configured media root:
// logos/<id>/company_logo.<ext>, avatars/<id>/<id>.<ext> and
// offers/<applicant>_<vacancy>_<name> for resumes.
package media

import (
	"fmt"
	"os"
	"path/filepath"
)

// Upload is an in-memory uploaded file.
type Upload struct {
	Filename string
	Data     []byte
}

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// SavePhoto replaces the user's photo: prior files in the user's
// directory (including stale crops) are removed first.
func (s *Store) SavePhoto(userID int, isCompany bool, filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	var dir, name string
	if isCompany {
		dir = filepath.Join(s.root, "logos", fmt.Sprintf("%d", userID))
		name = "company_logo" + ext
	} else {
		dir = filepath.Join(s.root, "avatars", fmt.Sprintf("%d", userID))
		name = fmt.Sprintf("%d%s", userID, ext)
	}

	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create media dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("can't write photo: %w", err)
	}
	return path, nil
}

func (s *Store) SaveOfferResume(applicantID, vacancyID int, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, "offers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create media dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d_%d_%s", applicantID, vacancyID, filepath.Base(filename)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("can't write resume: %w", err)
	}
	return path, nil
}
