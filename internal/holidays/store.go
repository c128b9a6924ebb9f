package holidays

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/painerror"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up when no holidays file is configured.
const DefaultFileName = "holidays.yaml"

// Store reads and writes the YAML file of extra bank closing days:
//
//	holidays:
//	  SE:
//	    - date: "2024-12-24"
//	      name: Julafton
type Store struct {
	File   string
	logger logging.Logger
}

type storeFile struct {
	Holidays map[string][]storeEntry `yaml:"holidays"`
}

type storeEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name,omitempty"`
}

// NewStore returns a store over file. An empty file name means DefaultFileName.
func NewStore(file string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{File: file, logger: logger}
}

// FindConfigFile looks for filename as given, then under ./config and
// $HOME/.pain-gen.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".pain-gen", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

func (s *Store) fileName() string {
	if s.File == "" {
		return DefaultFileName
	}
	return s.File
}

// Path returns the file Load reads and Save writes: the first existing
// location from FindConfigFile, or the configured name when none exists yet.
func (s *Store) Path() string {
	if path, err := s.FindConfigFile(s.fileName()); err == nil {
		return path
	}
	return s.fileName()
}

// Load returns the extra closing days per country. A missing file is not an
// error and yields an empty map.
func (s *Store) Load() (map[string]DateSet, error) {
	path := s.Path()
	if !fileutils.FileExists(path) {
		s.logger.Debug("No holidays file found", logging.F(logging.FieldFile, path))
		return map[string]DateSet{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading holidays file: %w", err)
	}

	var raw storeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "YAML with a top-level 'holidays' map of country to dates",
			Msg:            err.Error(),
		}
	}

	out := make(map[string]DateSet, len(raw.Holidays))
	total := 0
	for country, entries := range raw.Holidays {
		code := NormalizeCountry(country)
		set, ok := out[code]
		if !ok {
			set = DateSet{}
			out[code] = set
		}
		for i, e := range entries {
			date, _, err := dateutils.ParseDate(e.Date)
			if err != nil {
				return nil, &painerror.ParseError{
					Source: path,
					Row:    i + 1,
					Field:  "holidays." + code + ".date",
					Value:  e.Date,
					Err:    err,
				}
			}
			set.Add(date, e.Name)
			total++
		}
	}

	s.logger.Debug("Loaded holidays file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, total))
	return out, nil
}

// Save writes sets back to Path, creating its directory if needed.
// Countries and dates are written in sorted order.
func (s *Store) Save(sets map[string]DateSet) error {
	countries := make([]string, 0, len(sets))
	for c := range sets {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	raw := storeFile{Holidays: make(map[string][]storeEntry, len(sets))}
	for _, c := range countries {
		set := sets[c]
		entries := make([]storeEntry, 0, len(set))
		for _, d := range set.Dates() {
			entries = append(entries, storeEntry{Date: dateutils.ToISODate(d), Name: set.Name(d)})
		}
		raw.Holidays[NormalizeCountry(c)] = entries
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("error encoding holidays: %w", err)
	}

	path := s.Path()
	if err := fileutils.WriteFile(path, data); err != nil {
		return fmt.Errorf("error writing holidays file: %w", err)
	}

	s.logger.Info("Saved holidays file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(countries)))
	return nil
}
