package api

import (
	"strings"
	"testing"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		file    *Upload
		wantErr bool
	}{
		{"nil upload ok", nil, false},
		{"png within limit", &Upload{Filename: "a.png", Size: 1024}, false},
		{"jpeg within limit", &Upload{Filename: "photo.JPEG", Size: MaxImageSize}, false},
		{"webp ok", &Upload{Filename: "a.webp", Size: 10}, false},
		{"over 2MB", &Upload{Filename: "a.jpg", Size: MaxImageSize + 1}, true},
		{"wrong extension", &Upload{Filename: "a.pdf", Size: 10}, true},
		{"video extension rejected", &Upload{Filename: "a.mp4", Size: 10}, true},
		{"no extension", &Upload{Filename: "README", Size: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateImage(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !err.IsClientSide() {
				t.Error("validation error must be client-side")
			}
		})
	}
}

func TestValidateVideo(t *testing.T) {
	tests := []struct {
		name    string
		file    *Upload
		wantErr bool
	}{
		{"nil upload ok", nil, false},
		{"mp4 within limit", &Upload{Filename: "clip.mp4", Size: MaxVideoSize}, false},
		{"webm ok", &Upload{Filename: "clip.webm", Size: 1024}, false},
		{"mov uppercase ok", &Upload{Filename: "clip.MOV", Size: 1024}, false},
		{"over 10MB", &Upload{Filename: "clip.mp4", Size: MaxVideoSize + 1}, true},
		{"image extension rejected", &Upload{Filename: "clip.png", Size: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateVideo(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateVideo() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeForm(t *testing.T) {
	form, err := encodeForm(
		map[string]string{"name": "p", "is_free": "true"},
		map[string]*Upload{
			"image":   {Filename: "a.png", Size: 4, Reader: strings.NewReader("data")},
			"missing": nil,
		},
	)
	if err != nil {
		t.Fatalf("encodeForm: %v", err)
	}

	if !strings.HasPrefix(form.contentType, "multipart/form-data; boundary=") {
		t.Errorf("got content type %q, want multipart with generated boundary", form.contentType)
	}

	encoded := form.body.String()
	for _, want := range []string{`name="name"`, `name="is_free"`, `filename="a.png"`, "data"} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded body missing %q", want)
		}
	}
	if strings.Contains(encoded, `name="missing"`) {
		t.Error("nil upload produced a form part")
	}
}
