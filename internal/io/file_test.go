package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-album", "normal-album"},
		{"album:with:colons", "album_with_colons"},
		{"album<with>brackets", "album_with_brackets"},
		{"album/with\\slashes", "album_with_slashes"},
		{"album|with|pipes", "album_with_pipes"},
		{"album?with*wildcards", "album_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
		{"ベスト・アルバム", "ベスト・アルバム"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestImageService_ResizeImage(t *testing.T) {
	svc := NewImageService()
	data := testJPEG(t, 1200, 600)

	resized, err := svc.ResizeImage(data, 500, 500)
	if err != nil {
		t.Fatalf("ResizeImage: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("decode resized: %v", err)
	}

	// Aspect ratio preserved: 1200x600 capped at 500 wide becomes 500x250.
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 250 {
		t.Errorf("resized to %dx%d, want 500x250", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageService_ResizeImage_SmallerUntouched(t *testing.T) {
	svc := NewImageService()
	data := testJPEG(t, 100, 80)

	resized, err := svc.ResizeImage(data, 500, 500)
	if err != nil {
		t.Fatalf("ResizeImage: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("decode resized: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Errorf("dimensions changed to %dx%d, want 100x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageService_ConvertToJPEG_RejectsGarbage(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.ConvertToJPEG([]byte("not an image")); err == nil {
		t.Error("ConvertToJPEG should fail on undecodable bytes")
	}
}
