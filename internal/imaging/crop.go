package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// CropPath builds the sibling path the cropped derivative is written to:
// dir/name.ext -> dir/name_crop.ext.
func CropPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_crop" + ext
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// centerCrop cuts the largest centered square. Square images pass through.
func centerCrop(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == height {
		return img
	}

	side := width
	if height < side {
		side = height
	}
	left := bounds.Min.X + (width-side)/2
	top := bounds.Min.Y + (height-side)/2
	window := image.Rect(left, top, left+side, top+side)

	if sub, ok := img.(subImager); ok {
		return sub.SubImage(window)
	}
	return img
}

// CropFile reads an image, center-crops it and writes the derivative next
// to the original.
func CropFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("can't open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("can't decode image: %w", err)
	}

	cropped := centerCrop(img)

	dst, err := os.Create(CropPath(path))
	if err != nil {
		return fmt.Errorf("can't create cropped image: %w", err)
	}
	defer dst.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(dst, cropped)
	} else {
		err = jpeg.Encode(dst, cropped, nil)
	}
	if err != nil {
		return fmt.Errorf("can't encode cropped image: %w", err)
	}
	return nil
}
