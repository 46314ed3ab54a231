package media

import (
	"path/filepath"
	"strings"
)

// Kind identifies the broad media category of a file.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindNone  Kind = "none"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {},
	".avi": {},
	".mov": {},
	".mkv": {},
	".wmv": {},
	".flv": {},
}

// Classify maps a path to its media kind using the lower-cased extension.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; ok {
		return KindImage
	}
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo
	}
	return KindNone
}
