package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the embedded settings prefab.
const SettingsFile = "settings.yaml"

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Title  string `yaml:"title"`
}

type BallSpec struct {
	Image   string `yaml:"image"`
	Size    int    `yaml:"size"`
	Step    int    `yaml:"step"`
	MinSize int    `yaml:"min_size"`
	Filter  string `yaml:"filter"`
}

// SettingsSpec is the on-disk shape of the demo settings.
type SettingsSpec struct {
	Window     WindowSpec `yaml:"window"`
	TPS        int        `yaml:"tps"`
	Margin     int        `yaml:"margin"`
	Background string     `yaml:"background"`
	ImagesDir  string     `yaml:"images_dir"`
	Ball       BallSpec   `yaml:"ball"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := ParseSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// ParseSpec decodes a single YAML document, rejecting unknown keys.
func ParseSpec[T any](data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		var zero T
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("empty document")
		}
		return zero, err
	}
	return spec, nil
}

// LoadSettingsSpec reads the settings from path, or the settings prefab when
// path is empty.
func LoadSettingsSpec(path string) (SettingsSpec, error) {
	if path == "" {
		return LoadSpec[SettingsSpec](SettingsFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SettingsSpec{}, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParseSpec[SettingsSpec](data)
	if err != nil {
		return SettingsSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return spec, nil
}
