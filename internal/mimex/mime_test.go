package mimex

import "testing"

func TestImageContentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"jpg", "avatar.jpg", "image/jpeg"},
		{"jpeg", "avatar.jpeg", "image/jpeg"},
		{"png", "avatar.png", "image/png"},
		{"webp", "avatar.webp", "image/webp"},
		{"uppercase extension", "AVATAR.PNG", "image/png"},
		{"mixed case", "photo.JpEg", "image/jpeg"},
		{"multiple dots", "my.holiday.photo.png", "image/png"},
		{"unknown extension", "avatar.gif", "application/octet-stream"},
		{"no extension", "avatar", "application/octet-stream"},
		{"trailing dot", "avatar.", "application/octet-stream"},
		{"empty", "", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageContentType(tt.filename); got != tt.want {
				t.Errorf("ImageContentType(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
