package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed images/*.png
var assetsFS embed.FS

// ErrNotFound is returned when an image exists neither on disk nor in the binary.
var ErrNotFound = errors.New("assets: image not found")

// LoadImage loads name from dir on disk, falling back to the copy embedded
// under images/.
func LoadImage(dir, name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("assets: empty image name")
	}

	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
		b, err = assetsFS.ReadFile(embeddedPath(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// ProgramDir returns the directory holding the running executable.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("assets: locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func embeddedPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "images/")
	return path.Join("images", path.Base(s))
}
