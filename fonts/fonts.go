package fonts

import (
	"log"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title   FontName = "title"
	Regular FontName = "regular"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	loadOnce.Do(loadDefaults)
	face, ok := fonts[f]
	if !ok {
		return basicfont.Face7x13
	}
	return face
}

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
)

var defaultSizes = map[FontName]float64{
	Title:   28,
	Regular: 14,
	Small:   10,
}

func loadDefaults() {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Warning: could not parse built-in font: %v", err)
		return
	}
	for name, size := range defaultSizes {
		fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	}
}

// LoadFontWithSize replaces a named face with one parsed from ttf bytes.
func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	loadOnce.Do(loadDefaults)
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
