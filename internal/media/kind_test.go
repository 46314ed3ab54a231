package media_test

import (
	"testing"

	"shoebox/internal/media"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want media.Kind
	}{
		{"/photos/holiday/IMG_0001.jpg", media.KindImage},
		{"/photos/holiday/IMG_0002.jpeg", media.KindImage},
		{"scan.png", media.KindImage},
		{"anim.gif", media.KindImage},
		{"bitmap.bmp", media.KindImage},
		{"raw.tiff", media.KindImage},
		{"/videos/clip.mp4", media.KindVideo},
		{"old.avi", media.KindVideo},
		{"apple.mov", media.KindVideo},
		{"rip.mkv", media.KindVideo},
		{"wm.wmv", media.KindVideo},
		{"flash.flv", media.KindVideo},
		{"document.pdf", media.KindNone},
		{"notes.txt", media.KindNone},
		{"archive.tar.gz", media.KindNone},
		{"no-extension", media.KindNone},
		{"", media.KindNone},
	}

	for _, tc := range cases {
		if got := media.Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	for _, path := range []string{"IMG.JPG", "Img.Jpeg", "photo.PNG", "clip.MP4", "CLIP.MoV"} {
		if got := media.Classify(path); got == media.KindNone {
			t.Errorf("Classify(%q) = none, want a media kind", path)
		}
	}
}
