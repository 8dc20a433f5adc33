// Package font rasterizes TrueType fonts into a glyph atlas texture and
// turns strings into textured quads for the glyph shader.
package font

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/ioutil"
	"math"
	"time"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gregjohnson2017/glsu/pkg/gfx"
	"github.com/gregjohnson2017/glsu/pkg/log"
	"github.com/gregjohnson2017/glsu/pkg/perf"
)

const minASCII = 32

// fallback replaces runes the atlas does not hold.
const fallback = '?'

// Layout describes the vertices MapString emits: a 2D position in pixels
// and the glyph's pixel coordinates in the atlas.
var Layout = gfx.MustPattern("2f2f")

// ErrNoFontGlyph indicates the given font does not contain the given glyph
const ErrNoFontGlyph log.ConstErr = "font does not contain given glyph"

func int26_6ToFloat32(x fixed.Int26_6) float32 {
	top := float32(x >> 6)
	bottom := float32(x&0x3F) / 64.0
	return top + bottom
}

type runeInfo struct {
	row      int32
	width    int32
	height   int32
	bearingX float32
	bearingY float32
	advance  float32
}

type pointF32 struct {
	x float32
	y float32
}

// Metrics are the face-wide measurements in pixels.
type Metrics struct {
	Height     float32
	Ascent     float32
	Descent    float32
	XHeight    float32
	CapHeight  float32
	CaretSlope image.Point
}

// Font is a face at one size with its glyphs cached in a single-channel
// texture, one glyph after another from the top.
type Font struct {
	tex     *gfx.Texture
	runeMap []runeInfo
	metrics Metrics
}

// Default loads the Go Regular font at size.
func Default(ctx *gfx.Context, size int32) (*Font, error) {
	return Load(ctx, goregular.TTF, size)
}

// LoadFile loads the TrueType font at fileName.
func LoadFile(ctx *gfx.Context, fileName string, size int32) (*Font, error) {
	fontBytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	f, err := Load(ctx, fontBytes, size)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q, %v): %w", fileName, size, err)
	}
	return f, nil
}

// Load caches all of the printable ASCII glyphs of a TrueType font at a
// given size in a texture, along with the metrics and spacing needed to lay
// out strings.
func Load(ctx *gfx.Context, fontBytes []byte, size int32) (*Font, error) {
	sw := perf.Start()

	ttfFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{Size: float64(size)})
	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, err
	}

	type glyphRows struct {
		pix    []byte
		stride int
		origin image.Point
	}
	runeMap := make([]runeInfo, unicode.MaxASCII-minASCII)
	glyphs := make([]glyphRows, len(runeMap))
	var texWidth, texHeight int32
	for i := minASCII; i < unicode.MaxASCII; i++ {
		c := rune(i)

		roundedRect, mask, maskp, advance, okGlyph := face.Glyph(fixed.Point26_6{X: 0, Y: 0}, c)
		if !okGlyph {
			return nil, fmt.Errorf("glyph %q: %w", c, ErrNoFontGlyph)
		}
		accurateRect, _, okBounds := face.GlyphBounds(c)
		glyph, okCast := mask.(*image.Alpha)
		if !okBounds || !okCast {
			return nil, fmt.Errorf("glyph %q: %w", c, ErrNoFontGlyph)
		}

		info := runeInfo{
			row:      texHeight,
			width:    int32(roundedRect.Dx()),
			height:   int32(roundedRect.Dy()),
			bearingX: float32(math.Round(float64(accurateRect.Min.X.Ceil()))),
			bearingY: float32(accurateRect.Max.Y.Ceil()),
			advance:  float32(math.Round(float64(int26_6ToFloat32(advance)))),
		}
		runeMap[i-minASCII] = info
		// the face reuses its mask buffer, so copy the rows out now
		rows := make([]byte, 0, int(info.width*info.height))
		for row := 0; row < roundedRect.Dy(); row++ {
			beg := (maskp.Y+row)*glyph.Stride + maskp.X
			rows = append(rows, glyph.Pix[beg:beg+roundedRect.Dx()]...)
		}
		glyphs[i-minASCII] = glyphRows{pix: rows, stride: roundedRect.Dx()}
		if info.width > texWidth {
			texWidth = info.width
		}
		texHeight += info.height
	}

	glyphBytes := make([]byte, int(texWidth*texHeight))
	for i, g := range glyphs {
		info := runeMap[i]
		for row := int32(0); row < info.height; row++ {
			dst := int((info.row + row) * texWidth)
			copy(glyphBytes[dst:dst+int(info.width)], g.pix[int(row)*g.stride:])
		}
	}

	tex, err := gfx.NewTexture(ctx, texWidth, texHeight, glyphBytes, gfx.Red)
	if err != nil {
		return nil, err
	}
	tex.SetMinFilter(gfx.Nearest)
	tex.SetMagFilter(gfx.Nearest)

	otfFace, err := opentype.NewFace(sfntFont, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		tex.Destroy()
		return nil, err
	}
	otfMetrics := otfFace.Metrics()
	metrics := Metrics{
		Height:     int26_6ToFloat32(otfMetrics.Height),
		Ascent:     int26_6ToFloat32(otfMetrics.Ascent),
		Descent:    int26_6ToFloat32(otfMetrics.Descent),
		XHeight:    int26_6ToFloat32(otfMetrics.XHeight),
		CapHeight:  int26_6ToFloat32(otfMetrics.CapHeight),
		CaretSlope: otfMetrics.CaretSlope,
	}

	log.Perff("Loaded font at size %v:\t%v", size, time.Duration(sw.StopGetNano()))
	return &Font{tex: tex, runeMap: runeMap, metrics: metrics}, nil
}

func (f *Font) info(r rune) runeInfo {
	if r < minASCII || r >= unicode.MaxASCII {
		r = fallback
	}
	return f.runeMap[r-minASCII]
}

// Texture returns the glyph atlas. It is owned by the font.
func (f *Font) Texture() *gfx.Texture {
	return f.tex
}

// Metrics returns the face-wide measurements.
func (f *Font) Metrics() Metrics {
	return f.metrics
}

// Destroy frees the glyph atlas.
func (f *Font) Destroy() {
	f.tex.Destroy()
}

func (f *Font) stringWidth(str string) float32 {
	var strWidth float32
	var last runeInfo
	for _, r := range str {
		last = f.info(r)
		strWidth += last.advance
	}
	// adjust strWidth if last rune's width + bearingX > advance
	if float32(last.width)+last.bearingX > last.advance {
		strWidth += float32(last.width) + last.bearingX - last.advance
	}
	return strWidth
}

// StringDims returns the width and line height of str in pixels.
func (f *Font) StringDims(str string) (float32, float32) {
	if str == "" {
		return 0, f.metrics.Height
	}
	return f.stringWidth(str), f.metrics.Height
}

// MaxVerticalBearing gets the amount of vertical bearing needed
// to render this string with the given font
func (f *Font) MaxVerticalBearing(str string) float32 {
	var largestBearingY float32
	for _, r := range str {
		if info := f.info(r); info.bearingY > largestBearingY {
			largestBearingY = info.bearingY
		}
	}
	return largestBearingY
}

// MapString turns each character in the string into a pair of
// (x,y,s,t)-vertex triangles positioned relative to (x, y) by align.
// Positions are pixels from the bottom left; texture coordinates are atlas
// pixels from the top left, for use with the glyph shader and Layout.
func (f *Font) MapString(str string, x, y float32, align Align) []float32 {
	sw := perf.Start()
	defer sw.StopRecordAverage("font.MapString")
	if str == "" {
		return nil
	}
	// 2 triangles per rune, 3 vertices per triangle, 4 float32's per vertex (x,y,s,t)
	buffer := make([]float32, 0, len(str)*24)

	w2 := f.stringWidth(str) / 2
	offx := float32(math.Round(float64(-w2 - float32(align.H)*w2)))
	var offy float32
	switch align.V {
	case AlignBelow:
		offy = -float32(math.Ceil(float64(f.metrics.Ascent)))
	case AlignMiddle:
		offy = -f.metrics.XHeight / 2
	case AlignAbove:
		offy = float32(math.Ceil(float64(f.metrics.Descent)))
	}
	// offset origin to account for alignment
	origin := pointF32{x + offx, y + offy}
	for _, r := range str {
		info := f.info(r)

		// calculate x,y position coordinates - use bottom left as (0,0); shader converts for you
		posTL := pointF32{origin.x + info.bearingX, origin.y + (float32(info.height) - info.bearingY)}
		posTR := pointF32{posTL.x + float32(info.width), posTL.y}
		posBL := pointF32{posTL.x, origin.y - info.bearingY}
		posBR := pointF32{posTR.x, posBL.y}
		// calculate s,t texture coordinates - use top left as (0,0); shader converts for you
		texTL := pointF32{0, float32(info.row)}
		texTR := pointF32{float32(info.width), texTL.y}
		texBL := pointF32{texTL.x, texTL.y + float32(info.height)}
		texBR := pointF32{texTR.x, texBL.y}
		// create 2 triangles
		buffer = append(buffer,
			posBL.x, posBL.y, texBL.x, texBL.y, // bottom-left
			posTL.x, posTL.y, texTL.x, texTL.y, // top-left
			posTR.x, posTR.y, texTR.x, texTR.y, // top-right

			posBL.x, posBL.y, texBL.x, texBL.y, // bottom-left
			posTR.x, posTR.y, texTR.x, texTR.y, // top-right
			posBR.x, posBR.y, texBR.x, texBR.y, // bottom-right
		)

		origin.x += info.advance
	}

	return buffer
}

// WriteAtlasPNG encodes the glyph atlas, read back from the driver, as a
// white-on-black PNG for inspection.
func (f *Font) WriteAtlasPNG(w io.Writer) error {
	width, height := int(f.tex.Width()), int(f.tex.Height())
	glyphBytes := f.tex.Data()
	if len(glyphBytes) != width*height {
		return fmt.Errorf("atlas readback: got %v bytes, want %v", len(glyphBytes), width*height)
	}
	outImg := image.NewNRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			alpha := glyphBytes[j*width+i]
			outImg.SetNRGBA(i, j, color.NRGBA{alpha, alpha, alpha, 255})
		}
	}
	return png.Encode(w, outImg)
}
