package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	ThumbnailWidth  = 400
	ThumbnailHeight = 400
)

// MaxImagePixels bounds the decoded size of an image, 50 megapixels.
const MaxImagePixels = 50_000_000

var ErrImageTooLarge = errors.New("image dimensions too large")

// sniffLen covers every signature mimetype knows about images.
const sniffLen = 3072

// DetectContentType sniffs the leading bytes of r. The returned reader
// replays those bytes followed by the rest of r.
func DetectContentType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, fmt.Errorf("read file header: %w", err)
	}
	head = head[:n]
	mtype := mimetype.Detect(head)
	return mtype.String(), io.MultiReader(bytes.NewReader(head), r), nil
}

// CheckDimensions reads only the image header of src and fails with
// ErrImageTooLarge when the pixel count exceeds MaxImagePixels.
func CheckDimensions(src []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("decode image header: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	return nil
}

// Thumbnail decodes src and returns a JPEG that fits in the thumbnail box.
// Images already smaller than the box are not upscaled.
func Thumbnail(src []byte) ([]byte, error) {
	if err := CheckDimensions(src); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var thumb image.Image = img
	b := img.Bounds()
	if b.Dx() > ThumbnailWidth || b.Dy() > ThumbnailHeight {
		thumb = imaging.Fit(img, ThumbnailWidth, ThumbnailHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
