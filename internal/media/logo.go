package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Logos maiores que isso são reduzidas antes do encode.
const maxLogoWidth = 512

const webpQuality = 85

// NormalizeLogo decodifica a imagem enviada (png/jpeg/gif), reduz para a
// largura máxima e reencoda como WebP.
func NormalizeLogo(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	img = scaleDown(img, maxLogoWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}

	return buf.Bytes(), nil
}

// DataURL embute o WebP num data URL, o fallback quando não há bucket
// configurado.
func DataURL(webpData []byte) string {
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(webpData)
}

func scaleDown(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
