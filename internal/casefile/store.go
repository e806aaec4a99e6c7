// Package casefile stores cases as a directory of JSON files, one per world collection plus one for the case layer.
//
//	<root>/<case>/case_data.json
//	<root>/<case>/world_data/{districts,locations,factions,characters,sleuth,items}.json
package casefile

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/models"
)

var (
	ErrCaseNotFound = errors.NewSentinel("case not found")
	ErrInvalidName  = errors.NewSentinel("invalid case name")
)

const (
	caseDataFile = "case_data.json"
	worldDir     = "world_data"

	charactersFile = "characters.json"
	locationsFile  = "locations.json"
	itemsFile      = "items.json"
	factionsFile   = "factions.json"
	districtsFile  = "districts.json"
	sleuthFile     = "sleuth.json"
)

// Files up to this size hold nothing but an empty JSON list or object.
const emptyFileSize = 2

type Store struct {
	root   string
	logger *slog.Logger
}

func NewStore(root string, logger *slog.Logger) *Store {
	return &Store{
		root:   root,
		logger: logger.With("source", "CaseStore"),
	}
}

// SanitizeName converts a human-readable case name into its directory name.
func SanitizeName(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func (s *Store) casePath(name string) (string, error) {
	sanitized := SanitizeName(name)
	if sanitized == "" || sanitized == "." || sanitized == ".." || strings.ContainsAny(sanitized, `/\`) {
		return "", errors.Wrap(ErrInvalidName, "sanitize", slog.String("name", name))
	}
	return filepath.Join(s.root, sanitized), nil
}

// Create lays out the directory and empty files of a new case. Existing files are left untouched, so creating a
// case twice is harmless.
func (s *Store) Create(name string) (string, error) {
	casePath, err := s.casePath(name)
	if err != nil {
		return "", err
	}
	worldPath := filepath.Join(casePath, worldDir)
	if err = os.MkdirAll(worldPath, 0o755); err != nil {
		return "", errors.Wrap(err, "create case directories", slog.String("path", worldPath))
	}

	files := map[string]string{
		filepath.Join(casePath, caseDataFile):   "{}",
		filepath.Join(worldPath, sleuthFile):     "{}",
		filepath.Join(worldPath, districtsFile):  "[]",
		filepath.Join(worldPath, locationsFile):  "[]",
		filepath.Join(worldPath, factionsFile):   "[]",
		filepath.Join(worldPath, charactersFile): "[]",
		filepath.Join(worldPath, itemsFile):      "[]",
	}
	for path, content := range files {
		if _, err = os.Stat(path); err == nil {
			continue
		}
		if err = os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", errors.Wrap(err, "create case file", slog.String("path", path))
		}
	}

	s.logger.Info("created case", slog.String("case", name), slog.String("path", casePath))
	return casePath, nil
}

// Save writes the world and case data of an existing case. A nil sleuth leaves sleuth.json as it is.
func (s *Store) Save(name string, world *models.WorldData, caseData *models.CaseData) error {
	casePath, err := s.existingCasePath(name)
	if err != nil {
		return err
	}
	worldPath := filepath.Join(casePath, worldDir)
	if world == nil {
		world = &models.WorldData{}
	}
	saved := models.CaseData{}
	if caseData != nil {
		saved = *caseData
	}
	saved.Clues = nonNil(saved.Clues)
	saved.KeySuspects = nonNil(saved.KeySuspects)
	saved.CaseLocations = nonNil(saved.CaseLocations)

	writes := []struct {
		path string
		v    any
	}{
		{filepath.Join(worldPath, charactersFile), nonNil(world.Characters)},
		{filepath.Join(worldPath, locationsFile), nonNil(world.Locations)},
		{filepath.Join(worldPath, itemsFile), nonNil(world.Items)},
		{filepath.Join(worldPath, districtsFile), nonNil(world.Districts)},
		{filepath.Join(worldPath, factionsFile), nonNil(world.Factions)},
		{filepath.Join(casePath, caseDataFile), saved},
	}
	if world.Sleuth != nil {
		writes = append(writes, struct {
			path string
			v    any
		}{filepath.Join(worldPath, sleuthFile), world.Sleuth})
	}

	for _, w := range writes {
		if err = writeJSON(w.path, w.v); err != nil {
			return errors.Wrap(err, "save case", slog.String("case", name))
		}
	}

	s.logger.Debug("saved case", slog.String("case", name))
	return nil
}

// Load reads the world and case data of an existing case.
func (s *Store) Load(name string) (*models.WorldData, *models.CaseData, error) {
	casePath, err := s.existingCasePath(name)
	if err != nil {
		return nil, nil, err
	}
	worldPath := filepath.Join(casePath, worldDir)

	var (
		world    models.WorldData
		caseData models.CaseData
		sleuth   models.Sleuth
	)
	reads := []struct {
		path string
		v    any
	}{
		{filepath.Join(worldPath, charactersFile), &world.Characters},
		{filepath.Join(worldPath, locationsFile), &world.Locations},
		{filepath.Join(worldPath, itemsFile), &world.Items},
		{filepath.Join(worldPath, factionsFile), &world.Factions},
		{filepath.Join(worldPath, districtsFile), &world.Districts},
		{filepath.Join(casePath, caseDataFile), &caseData},
	}
	for _, r := range reads {
		if _, err = readJSON(r.path, r.v); err != nil {
			return nil, nil, errors.Wrap(err, "load case", slog.String("case", name))
		}
	}

	hasSleuth, err := readJSON(filepath.Join(worldPath, sleuthFile), &sleuth)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load case", slog.String("case", name))
	}
	if hasSleuth {
		world.Sleuth = &sleuth
	}

	return &world, &caseData, nil
}

// List returns the directory names of all cases under the root in lexical order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "list cases", slog.String("root", s.root))
	}
	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err = os.Stat(filepath.Join(s.root, entry.Name(), caseDataFile)); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) existingCasePath(name string) (string, error) {
	casePath, err := s.casePath(name)
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(casePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrap(ErrCaseNotFound, "stat case", slog.String("case", name))
		}
		return "", errors.Wrap(err, "stat case", slog.String("case", name))
	}
	return casePath, nil
}

// readJSON decodes path into v. Missing and empty files leave v untouched and report false.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrap(err, "read file", slog.String("path", path))
	}
	if len(strings.TrimSpace(string(data))) <= emptyFileSize {
		return false, nil
	}
	if err = json.Unmarshal(data, v); err != nil {
		return false, errors.Wrap(err, "decode file", slog.String("path", path))
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode file", slog.String("path", path))
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "write file", slog.String("path", path))
	}
	return nil
}

// nonNil keeps empty collections serialised as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
