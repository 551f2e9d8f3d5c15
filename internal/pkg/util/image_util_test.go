package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestResizeAvatar(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for x := 0; x < 640; x++ {
		for y := 0; y < 480; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var in bytes.Buffer
	if err := png.Encode(&in, src); err != nil {
		t.Fatal(err)
	}

	out, err := ResizeAvatar(bytes.NewReader(in.Bytes()), 256)
	if err != nil {
		t.Fatalf("ResizeAvatar() error = %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("bounds = %v, want 256x256", b)
	}

	ct, err := DetectContentType(bytes.NewReader(out))
	if err != nil || ct != "image/jpeg" {
		t.Errorf("content type = %q, %v", ct, err)
	}
}

func TestResizeAvatarRejectsNonImage(t *testing.T) {
	if _, err := ResizeAvatar(strings.NewReader("not an image"), 256); err == nil {
		t.Error("expected decode error")
	}
}
