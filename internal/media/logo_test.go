package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeLogo(t *testing.T) {
	t.Run("SmallImageKeepsDimensions", func(t *testing.T) {
		out, err := NormalizeLogo(pngFixture(t, 100, 60))
		assert.NoError(t, err)

		decoded, err := webp.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 60, decoded.Bounds().Dy())
	})

	t.Run("WideImageIsScaledDown", func(t *testing.T) {
		out, err := NormalizeLogo(pngFixture(t, 1024, 512))
		assert.NoError(t, err)

		decoded, err := webp.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 512, decoded.Bounds().Dx())
		assert.Equal(t, 256, decoded.Bounds().Dy())
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		_, err := NormalizeLogo([]byte("not an image"))
		assert.Error(t, err)
	})
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte{0x52, 0x49, 0x46, 0x46})
	assert.True(t, strings.HasPrefix(url, "data:image/webp;base64,"))
	assert.Equal(t, "data:image/webp;base64,UklGRg==", url)
}
