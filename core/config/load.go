package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration at path. A missing file is not an error:
// the system must come up with defaults when the initramfs carries no
// configuration.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	contents, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return out, nil
}
