package entity

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/url"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	// Registers the webp decoder so image.Decode can sniff candidate
	// bytes; png/jpeg/gif/ico/bmp register through the imports above.
	_ "golang.org/x/image/webp"
)

var (
	// ErrInvalidSize indicates a resize request with non-positive or
	// unparseable dimensions.
	ErrInvalidSize = errors.New("invalid image size")

	// ErrEncode indicates the target format cannot represent the pixel
	// buffer or has no encode path.
	ErrEncode = errors.New("encode failed")
)

// Favicon is a validated favicon asset: the exact candidate URL it was
// fetched from, the raw encoded bytes, and the decoded image. The three
// always agree; construction fails rather than producing a partial asset.
type Favicon struct {
	URL   *url.URL
	Bytes []byte
	Image image.Image
}

// NewFavicon builds a Favicon from already-fetched bytes, validating them
// by decoding. The format is sniffed from the content, not the URL suffix.
func NewFavicon(src *url.URL, data []byte) (*Favicon, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image from %s: %w", src, err)
	}
	return &Favicon{URL: src, Bytes: data, Image: img}, nil
}

// Resize returns a new asset scaled to the dimensions the spec selects.
// SizeDefault returns the receiver unchanged, bytes untouched. All other
// variants force the exact target dimensions: the source is center-cropped
// to the target aspect ratio and scaled with CatmullRom, and the raw bytes
// are regenerated (PNG) from the resized pixels. The source URL carries over.
func (f *Favicon) Resize(size ImageSize) (*Favicon, error) {
	if size.Kind == SizeDefault {
		return f, nil
	}

	width, height, ok := size.Dimensions()
	if !ok || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}

	cropped := cropToAspect(f.Image, width, height)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return &Favicon{URL: f.URL, Bytes: buf.Bytes(), Image: dst}, nil
}

// Reformat re-encodes the decoded image into the given container and
// returns the encoded bytes. The asset itself is not modified.
func (f *Favicon) Reformat(format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatPNG:
		if err := png.Encode(&buf, f.Image); err != nil {
			return nil, fmt.Errorf("%w: png: %v", ErrEncode, err)
		}
	case FormatICO:
		// go-ico rejects images above 256x256.
		if err := ico.Encode(&buf, f.Image); err != nil {
			return nil, fmt.Errorf("%w: ico: %v", ErrEncode, err)
		}
	case FormatJPEG:
		if !isOpaque(f.Image) {
			return nil, fmt.Errorf("%w: jpeg cannot represent alpha channel", ErrEncode)
		}
		if err := jpeg.Encode(&buf, f.Image, nil); err != nil {
			return nil, fmt.Errorf("%w: jpeg: %v", ErrEncode, err)
		}
	case FormatGIF:
		if err := gif.Encode(&buf, f.Image, nil); err != nil {
			return nil, fmt.Errorf("%w: gif: %v", ErrEncode, err)
		}
	case FormatBMP:
		if err := bmp.Encode(&buf, f.Image); err != nil {
			return nil, fmt.Errorf("%w: bmp: %v", ErrEncode, err)
		}
	default:
		return nil, fmt.Errorf("%w: no encoder for format %q", ErrEncode, string(format))
	}

	return buf.Bytes(), nil
}

// cropToAspect center-crops src to the target aspect ratio. A source that
// already matches passes through uncropped.
func cropToAspect(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	var rect image.Rectangle
	switch {
	case srcW*height > srcH*width:
		// Wider than target aspect: crop sides.
		cropW := srcH * width / height
		offset := (srcW - cropW) / 2
		rect = image.Rect(b.Min.X+offset, b.Min.Y, b.Min.X+offset+cropW, b.Max.Y)
	case srcW*height < srcH*width:
		// Taller than target aspect: crop top and bottom.
		cropH := srcW * height / width
		offset := (srcH - cropH) / 2
		rect = image.Rect(b.Min.X, b.Min.Y+offset, b.Max.X, b.Min.Y+offset+cropH)
	default:
		return src
	}

	return cropImage(src, rect)
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	// If the source supports SubImage, use it for efficiency
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	// Otherwise, copy pixels manually
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}

// isOpaque reports whether every pixel is fully opaque.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != uint32(color.Opaque.A) {
				return false
			}
		}
	}
	return true
}
