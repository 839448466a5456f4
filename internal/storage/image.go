package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	webpQuality   = 85
)

// ProcessImage decodes an uploaded image, scales it down to at most
// maxImageWidth keeping aspect, and re-encodes it as webp. Non-decodable
// input is returned unchanged so callers can store it verbatim.
func ProcessImage(data []byte, originalName string) (out []byte, name string, contentType string, ok bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if img, err = webp.Decode(bytes.NewReader(data)); err != nil {
			return data, originalName, "", false
		}
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return data, originalName, "", false
	}

	return buf.Bytes(), trimExt(originalName) + ".webp", "image/webp", true
}

func scaleDown(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxImageWidth {
		return img
	}

	h := b.Dy() * maxImageWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func trimExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
		if name[i] == '/' {
			break
		}
	}
	return name
}
