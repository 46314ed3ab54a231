package config

const (
	defaultCatalogPath = "~/.local/share/shoebox/catalog.db"
	defaultLibraryDir  = "~/media"
	defaultLogDir      = "~/.local/share/shoebox/logs"
	defaultPhotosDir   = "photos"
	defaultVideosDir   = "videos"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
			LibraryDir:  defaultLibraryDir,
			LogDir:      defaultLogDir,
		},
		Library: Library{
			PhotosDir: defaultPhotosDir,
			VideosDir: defaultVideosDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
