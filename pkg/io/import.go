package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/linkdraw/pkg/errors"
)

// Dataset encodings.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath returns the dataset encoding implied by path's extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset extension %q (want .json, .toml, .yaml or .yml)", filepath.Ext(path))
}

// ReadDataset decodes a dataset from r in the given format and checks its
// structure:
//   - every link has either coords or both source and target
//   - node IDs are unique and non-empty
//   - every referenced node exists
//   - coords hold 2 or 3 finite points
//
// ReadDataset does not close r.
func ReadDataset(r io.Reader, format string) (*Dataset, error) {
	var ds Dataset
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&ds)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&ds)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&ds)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode %s dataset", format)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ImportDataset reads the dataset file at path.
func ImportDataset(path string) (*Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDataset(f, format)
}

// Validate checks the dataset structure. See [ReadDataset].
func (d *Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidDataset, "node %d: missing id", i)
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidDataset, "node %s: duplicate id", n.ID)
		}
		seen[n.ID] = true
	}
	for i, l := range d.Links {
		if len(l.Coords) > 0 {
			if err := errors.ValidateItemPoints(i, l.Coords); err != nil {
				return err
			}
			continue
		}
		if l.Source == "" || l.Target == "" {
			return errors.New(errors.ErrCodeInvalidDataset, "link %d: needs coords or source and target", i)
		}
		for _, id := range []string{l.Source, l.Target} {
			if !seen[id] {
				return errors.New(errors.ErrCodeInvalidDataset, "link %d: unknown node %q", i, id)
			}
		}
	}
	return nil
}
