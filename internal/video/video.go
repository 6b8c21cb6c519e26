package video

import (
	"path/filepath"
	"strings"
)

// Video describes the media file a subtitle belongs to. Name is the path used
// to derive subtitle filenames; the remaining fields carry release metadata
// for subtitle sources that implement video matching.
type Video struct {
	// Name is the path or filename of the video.
	Name string

	Title        string
	Year         int
	Season       int
	Episode      int
	ReleaseGroup string
	Resolution   string
	Source       string
	Size         int64
}

// New creates a Video for the given path.
func New(name string) *Video {
	return &Video{Name: name}
}

// Basename returns the video filename without directory or extension.
func (v *Video) Basename() string {
	base := filepath.Base(v.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
