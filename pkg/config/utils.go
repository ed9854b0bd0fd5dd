package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FindEnvFile looks for name in the working directory and then in each
// parent up to the root, returning the first match. An empty name means
// ".env"; an absolute name is only checked where it points.
func FindEnvFile(name string) (string, error) {
	return findUp(afero.NewOsFs(), name)
}

func findUp(fs afero.Fs, name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	if filepath.IsAbs(name) {
		if ok, _ := afero.Exists(fs, name); ok {
			return name, nil
		}
		return "", os.ErrNotExist
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, candidate); ok {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
