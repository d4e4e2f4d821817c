package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
)

// BytesPerPixel is the number of interleaved channels in RGBImage.Data
const BytesPerPixel = 3

// ErrEmptyImage is returned when a decoded image has no pixels
var ErrEmptyImage = errors.New("loaders: image has no pixels")

// RGBImage is a decoded image as row-major, interleaved 8-bit RGB bytes.
// Row 0 is the top of the image.
type RGBImage struct {
	Width  int
	Height int
	Data   []byte // len(Data) == Width*Height*BytesPerPixel
}

// LoadRGB loads a PNG, JPEG, BMP or TIFF file and converts it to interleaved RGB bytes
func LoadRGB(filename string) (*RGBImage, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	rgb, err := DecodeRGB(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rgb, nil
}

// DecodeRGB decodes any registered image format from r.
// Alpha is discarded without darkening the color channels.
func DecodeRGB(r io.Reader) (*RGBImage, error) {
	// Decode image (auto-detects the format from the header)
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	data := make([]byte, width*height*BytesPerPixel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Non-premultiplied so translucent pixels keep their color
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			offset := (y*width + x) * BytesPerPixel
			data[offset] = c.R
			data[offset+1] = c.G
			data[offset+2] = c.B
		}
	}

	return &RGBImage{
		Width:  width,
		Height: height,
		Data:   data,
	}, nil
}
