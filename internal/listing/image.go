package listing

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

const dataURIPrefix = "data:image/jpeg;base64,"

const (
	// MaxImageBytes bounds an uploaded image file.
	MaxImageBytes = 8 << 20
	// MaxImagePixels bounds the declared width*height before any pixel is decoded.
	MaxImagePixels = 25_000_000
	// maxImageRefLen fits a base64 data URI of a MaxImageBytes image.
	maxImageRefLen = MaxImageBytes/3*4 + 64
)

func imageError(reason string) error {
	return &ValidationError{Fields: []string{"image"}, Reason: reason}
}

// EncodeImage decodes an uploaded picture, bounds it to maxW x maxH keeping
// the aspect ratio, and returns it as a self-contained JPEG data URI.
func EncodeImage(r io.Reader, maxW, maxH uint) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", imageError("image could not be read")
	}
	if len(raw) > MaxImageBytes {
		return "", imageError("image is too large")
	}

	if err := checkDimensions(raw); err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", imageError("image could not be decoded")
	}

	thumb := resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}

	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// checkDimensions reads only the header, so a tiny file declaring a huge
// canvas is refused before the decoder allocates for it.
func checkDimensions(raw []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return imageError("image could not be decoded")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 ||
		int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return imageError("image dimensions are too large")
	}
	return nil
}

// ValidateImageRef accepts a base64 image data URI or an http(s) URL.
func ValidateImageRef(ref string) error {
	if len(ref) > maxImageRefLen {
		return imageError("image is too large")
	}

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return nil
	case strings.HasPrefix(ref, "data:image/"):
		meta, data, ok := strings.Cut(ref, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			break
		}
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			break
		}
		// formats the server cannot parse are left to the browser
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(raw)); err == nil &&
			int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
			return imageError("image dimensions are too large")
		}
		return nil
	}
	return imageError("image must be a base64 data URI or URL")
}
