package entity

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://www.example.com/favicon.png")
	require.NoError(t, err)
	return u
}

// pngBytes encodes a solid-color test image.
func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewFavicon(t *testing.T) {
	src := testURL(t)
	data := pngBytes(t, 32, 32, color.RGBA{R: 255, A: 255})

	fav, err := NewFavicon(src, data)
	require.NoError(t, err)
	assert.Equal(t, src, fav.URL)
	assert.Equal(t, data, fav.Bytes)
	assert.Equal(t, 32, fav.Image.Bounds().Dx())
	assert.Equal(t, 32, fav.Image.Bounds().Dy())
}

func TestNewFaviconRejectsNonImage(t *testing.T) {
	_, err := NewFavicon(testURL(t), []byte("<html>not an image</html>"))
	assert.Error(t, err)
}

func TestResizeDefaultIsUnchanged(t *testing.T) {
	data := pngBytes(t, 32, 32, color.RGBA{G: 255, A: 255})
	fav, err := NewFavicon(testURL(t), data)
	require.NoError(t, err)

	same, err := fav.Resize(SizeSpecDefault)
	require.NoError(t, err)
	assert.Equal(t, fav.Bytes, same.Bytes)
	assert.Same(t, fav, same)
}

func TestResizeForcesExactDimensions(t *testing.T) {
	tests := []struct {
		name string
		size ImageSize
		w, h int
	}{
		{name: "small", size: SizeSpecSmall, w: 16, h: 16},
		{name: "medium", size: SizeSpecMedium, w: 32, h: 32},
		{name: "large", size: SizeSpecLarge, w: 64, h: 64},
		{name: "custom square", size: CustomSize(16, 16), w: 16, h: 16},
		{name: "custom non-square from square source", size: CustomSize(48, 12), w: 48, h: 12},
	}

	src := testURL(t)
	data := pngBytes(t, 100, 60, color.RGBA{B: 255, A: 255})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav, err := NewFavicon(src, data)
			require.NoError(t, err)

			resized, err := fav.Resize(tt.size)
			require.NoError(t, err)

			assert.Equal(t, tt.w, resized.Image.Bounds().Dx())
			assert.Equal(t, tt.h, resized.Image.Bounds().Dy())
			assert.Equal(t, src, resized.URL, "source URL must carry over")

			// Bytes are regenerated from the resized pixels.
			decoded, _, err := image.Decode(bytes.NewReader(resized.Bytes))
			require.NoError(t, err)
			assert.Equal(t, tt.w, decoded.Bounds().Dx())
			assert.Equal(t, tt.h, decoded.Bounds().Dy())

			// Original asset untouched.
			assert.Equal(t, 100, fav.Image.Bounds().Dx())
			assert.Equal(t, data, fav.Bytes)
		})
	}
}

func TestResizeRejectsBadDimensions(t *testing.T) {
	fav, err := NewFavicon(testURL(t), pngBytes(t, 32, 32, color.RGBA{A: 255}))
	require.NoError(t, err)

	_, err = fav.Resize(CustomSize(0, 10))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = fav.Resize(CustomSize(16, -1))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = fav.Resize(ImageSize{Kind: SizeInvalid})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestReformat(t *testing.T) {
	fav, err := NewFavicon(testURL(t), pngBytes(t, 32, 32, color.RGBA{R: 200, G: 100, A: 255}))
	require.NoError(t, err)

	t.Run("png", func(t *testing.T) {
		out, err := fav.Reformat(FormatPNG)
		require.NoError(t, err)
		_, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
	})

	t.Run("ico", func(t *testing.T) {
		out, err := fav.Reformat(FormatICO)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("jpeg opaque", func(t *testing.T) {
		out, err := fav.Reformat(FormatJPEG)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("gif", func(t *testing.T) {
		out, err := fav.Reformat(FormatGIF)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("bmp", func(t *testing.T) {
		out, err := fav.Reformat(FormatBMP)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := fav.Reformat(FormatInvalid)
		assert.ErrorIs(t, err, ErrEncode)
	})
}

func TestReformatJPEGRejectsAlpha(t *testing.T) {
	fav, err := NewFavicon(testURL(t), pngBytes(t, 16, 16, color.RGBA{R: 255, A: 128}))
	require.NoError(t, err)

	_, err = fav.Reformat(FormatJPEG)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestReformatICORejectsOversize(t *testing.T) {
	// The ICO container caps dimensions at 256x256.
	fav, err := NewFavicon(testURL(t), pngBytes(t, 300, 300, color.RGBA{A: 255}))
	require.NoError(t, err)

	_, err = fav.Reformat(FormatICO)
	assert.ErrorIs(t, err, ErrEncode)
}
