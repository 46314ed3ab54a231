package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return errors.New("paths.catalog_path must be set")
	}
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	for i, root := range c.Paths.Roots {
		if strings.TrimSpace(root) == "" {
			return fmt.Errorf("paths.roots[%d] is empty", i)
		}
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.PhotosDir == "" {
		return errors.New("library.photos_dir must be set")
	}
	if c.Library.VideosDir == "" {
		return errors.New("library.videos_dir must be set")
	}
	if c.Library.PhotosDir == c.Library.VideosDir {
		return errors.New("library.photos_dir and library.videos_dir must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
