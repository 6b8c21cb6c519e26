package video

import "testing"

func TestBasename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain file", "movie.mkv", "movie"},
		{"nested path", "/data/shows/s01e01.mp4", "s01e01"},
		{"dotted release name", "Some.Movie.2020.1080p.mkv", "Some.Movie.2020.1080p"},
		{"no extension", "/data/movie", "movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.path).Basename(); got != tt.want {
				t.Errorf("Basename() = %q, want %q", got, tt.want)
			}
		})
	}
}
