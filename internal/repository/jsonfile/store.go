// Package jsonfile implements the persistence adapter on flat JSON files,
// one file per collection under a data directory. Every operation is a
// whole-file read or rewrite; nothing is cached between calls.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/seed"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
)

const (
	resourcesFile   = "resources.json"
	projectsFile    = "projects.json"
	progressFile    = "user_progress.json"
	discussionsFile = "discussions.json"
	streaksFile     = "streaks.json"
	practiceFile    = "practice_problems.json"
)

// Store is the flat-file backend. The mutex serialises writers inside this
// process only; concurrent processes sharing a data directory still race
// (last writer wins), which is an accepted limitation of the file backend.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New opens (and if necessary creates) the data directory and seeds the
// catalog files that do not exist yet.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir}
	s.seedMissing()
	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) seedMissing() {
	if _, err := os.Stat(s.path(resourcesFile)); os.IsNotExist(err) {
		s.writeJSON(resourcesFile, seed.Resources())
	}
	if _, err := os.Stat(s.path(projectsFile)); os.IsNotExist(err) {
		s.writeJSON(projectsFile, seed.Projects())
	}
	if _, err := os.Stat(s.path(practiceFile)); os.IsNotExist(err) {
		s.writeJSON(practiceFile, defaultPracticeDoc())
	}
}

// readJSON decodes a collection file into out. A missing file reports
// os.ErrNotExist; malformed content is logged as a warning and reported so
// callers can degrade to an empty collection.
func (s *Store) readJSON(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("failed to read store file", zap.String("file", name), zap.Error(err))
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Log.Warn("malformed store file, treating as empty", zap.String("file", name), zap.Error(err))
		return err
	}
	return nil
}

// writeJSON rewrites a collection file in full.
func (s *Store) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		logger.Log.Warn("failed to write store file", zap.String("file", name), zap.Error(err))
		return err
	}
	return nil
}

// Resources loads the catalog, reseeding it if the file went missing.
func (s *Store) Resources() []model.Resource {
	var resources []model.Resource
	if err := s.readJSON(resourcesFile, &resources); err != nil {
		if os.IsNotExist(err) {
			resources = seed.Resources()
			s.writeJSON(resourcesFile, resources)
			return resources
		}
		return []model.Resource{}
	}
	return resources
}

// Projects loads the project catalog with the same seed-on-empty behaviour.
func (s *Store) Projects() []model.Project {
	var projects []model.Project
	if err := s.readJSON(projectsFile, &projects); err != nil {
		if os.IsNotExist(err) {
			projects = seed.Projects()
			s.writeJSON(projectsFile, projects)
			return projects
		}
		return []model.Project{}
	}
	return projects
}
