package service

import (
	"sort"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
)

// ContentService serves the curated catalogs: learning resources and
// practice projects.
type ContentService struct {
	Catalog repository.CatalogStore
}

func NewContentService(catalog repository.CatalogStore) *ContentService {
	return &ContentService{Catalog: catalog}
}

// Resources returns the catalog filtered by any combination of level, type
// and tag. Empty filter values match everything; an invalid level returns
// ErrUnknownLevel rather than silently matching nothing.
func (s *ContentService) Resources(level, resourceType, tag string) ([]model.Resource, error) {
	if level != "" && !model.Level(level).Valid() {
		return nil, util.ErrUnknownLevel
	}

	out := []model.Resource{}
	for _, r := range s.Catalog.Resources() {
		if level != "" && r.Level != model.Level(level) {
			continue
		}
		if resourceType != "" && r.Type != resourceType {
			continue
		}
		if tag != "" && !hasTag(r.Tags, tag) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Resource looks a single resource up by id.
func (s *ContentService) Resource(id string) (model.Resource, error) {
	for _, r := range s.Catalog.Resources() {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Resource{}, util.ErrResourceNotFound
}

// Projects returns the project catalog, optionally filtered by level and a
// difficulty ceiling. maxDifficulty <= 0 means no ceiling.
func (s *ContentService) Projects(level string, maxDifficulty int) ([]model.Project, error) {
	if level != "" && !model.Level(level).Valid() {
		return nil, util.ErrUnknownLevel
	}
	out := []model.Project{}
	for _, p := range s.Catalog.Projects() {
		if level != "" && p.Level != model.Level(level) {
			continue
		}
		if maxDifficulty > 0 && p.Difficulty > maxDifficulty {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Project looks a single project up by id.
func (s *ContentService) Project(id string) (model.Project, error) {
	for _, p := range s.Catalog.Projects() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, util.ErrProjectNotFound
}

// ResourceTypes lists the distinct resource types in the catalog, sorted.
func (s *ContentService) ResourceTypes() []string {
	seen := map[string]struct{}{}
	for _, r := range s.Catalog.Resources() {
		seen[r.Type] = struct{}{}
	}
	return sortedKeys(seen)
}

// Tags lists the distinct resource tags in the catalog, sorted.
func (s *ContentService) Tags() []string {
	seen := map[string]struct{}{}
	for _, r := range s.Catalog.Resources() {
		for _, t := range r.Tags {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
