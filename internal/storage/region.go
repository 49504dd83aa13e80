package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/expedition/pkg/region"
	"gopkg.in/yaml.v3"
)

// Region catalog operations (filesystem-backed)

func (r *RedisStorage) regionsDir() string {
	return filepath.Join(r.dataDir, "regions")
}

func (r *RedisStorage) ListRegions(ctx context.Context) (map[string]string, error) {
	regions := make(map[string]string)

	err := filepath.WalkDir(r.regionsDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !IsCatalogFile(path) {
			return nil
		}

		reg, err := ReadRegionFile(path)
		if err != nil {
			r.logger.Warn("Skipping unreadable region file", "path", path, "error", err)
			return nil
		}

		regions[reg.Name] = filepath.Base(path)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to walk regions directory", "error", err)
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return regions, nil
}

func (r *RedisStorage) GetRegion(ctx context.Context, filename string) (*region.Region, error) {
	path := filepath.Join(r.regionsDir(), filepath.Base(filename))
	reg, err := ReadRegionFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("region not found: %s", filename)
		}
		return nil, err
	}
	return reg, nil
}

// IsCatalogFile reports whether path has a supported catalog extension.
func IsCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// ReadRegionFile loads a JSON or YAML region catalog. Completion counters
// are derived from the locations.
func ReadRegionFile(path string) (*region.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := DecodeRegion(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse region file %s: %w", path, err)
	}
	return reg, nil
}

// DecodeRegion decodes catalog bytes; ext selects the format (".json", ".yaml", ".yml").
func DecodeRegion(data []byte, ext string) (*region.Region, error) {
	var reg region.Region
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&reg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&reg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	reg.Recount()
	return &reg, nil
}
