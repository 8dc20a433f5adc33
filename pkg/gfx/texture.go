package gfx

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/log"
	"github.com/gregjohnson2017/glsu/pkg/perf"
)

// ErrCreateTexture indicates that the driver could not allocate a texture
// name.
const ErrCreateTexture log.ConstErr = "failed to create texture"

// ErrTextureSize indicates non-positive texture dimensions.
const ErrTextureSize log.ConstErr = "invalid texture size"

// ErrTextureData indicates pixel data whose length does not match the
// dimensions and format.
const ErrTextureData log.ConstErr = "pixel data does not match texture size"

// ErrCoordOutOfRange indicates that given coordinates are out of range
const ErrCoordOutOfRange log.ConstErr = "coordinates out of range"

// Texture owns a 2D texture of byte components.
type Texture struct {
	noCopy noCopy

	ctx    *Context
	id     uint32
	width  int32
	height int32
	format Format
}

var _ Resource = (*Texture)(nil)

// NewTexture uploads width×height pixels of the given format, tightly
// packed, with row 0 at texture coordinate t = 0. data may be nil to leave
// the contents undefined. Mipmaps are generated from the upload.
func NewTexture(ctx *Context, width, height int32, data []byte, format Format) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %v×%v", ErrTextureSize, width, height)
	}
	if format.Channels() == 0 {
		return nil, fmt.Errorf("%w: format %#x", ErrTextureData, uint32(format))
	}
	want := int(width) * int(height) * format.Channels()
	if data != nil && len(data) != want {
		return nil, fmt.Errorf("%w: got %v bytes, want %v", ErrTextureData, len(data), want)
	}

	sw := perf.Start()
	defer sw.StopRecordAverage("gfx.uploadTexture")
	id := ctx.fn.GenTexture()
	if id == 0 {
		return nil, ErrCreateTexture
	}
	t := &Texture{ctx: ctx, id: id, width: width, height: height, format: format}

	var ptr unsafe.Pointer
	if data != nil {
		ptr = unsafe.Pointer(&data[0])
	}
	t.Bind()
	// rows are tightly packed regardless of the channel count
	ctx.fn.PixelStorei(glapi.UNPACK_ALIGNMENT, 1)
	ctx.fn.TexImage2D(glapi.TEXTURE_2D, 0, int32(format), width, height, uint32(format), glapi.UNSIGNED_BYTE, ptr)
	ctx.fn.GenerateMipmap(glapi.TEXTURE_2D)
	t.Unbind()

	return t, nil
}

// NewTextureFromImage converts img to non-premultiplied RGBA and uploads it.
// Row 0 of the image becomes row 0 of the texture.
func NewTextureFromImage(ctx *Context, img image.Image) (*Texture, error) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	// a full width sub-image shares the tail of its parent's pixels
	pix := nrgba.Pix[:4*b.Dx()*b.Dy()]
	t, err := NewTexture(ctx, int32(b.Dx()), int32(b.Dy()), pix, RGBA)
	if err != nil {
		return nil, err
	}
	t.SetMinFilter(LinearMipmapNearest)
	t.SetMagFilter(Nearest)
	return t, nil
}

func (t *Texture) setParameter(pname uint32, param int32) {
	if !t.IsValid() {
		misuse(t.context(), "texture", "parameter change")
		return
	}
	t.Bind()
	t.ctx.fn.TexParameteri(glapi.TEXTURE_2D, pname, param)
	t.Unbind()
}

// SetMinFilter sets the minification function.
func (t *Texture) SetMinFilter(f Filter) {
	t.setParameter(glapi.TEXTURE_MIN_FILTER, int32(f))
}

// SetMagFilter sets the magnification function; only Nearest and Linear are
// accepted by the driver.
func (t *Texture) SetMagFilter(f Filter) {
	t.setParameter(glapi.TEXTURE_MAG_FILTER, int32(f))
}

// SetWrapMode sets how lookups outside [0, 1] along c are resolved.
func (t *Texture) SetWrapMode(c Coord, mode WrapMode) {
	t.setParameter(uint32(c), int32(mode))
}

// SetPixels overwrites the w×h rectangle at (x, y) and regenerates mipmaps.
func (t *Texture) SetPixels(x, y, w, h int32, pixels []byte) error {
	if !t.IsValid() {
		misuse(t.context(), "texture", "pixel upload")
		return ErrInvalidResource
	}
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > t.width || y+h > t.height {
		return fmt.Errorf("SetPixels(%v, %v, %v, %v): %w", x, y, w, h, ErrCoordOutOfRange)
	}
	if want := int(w) * int(h) * t.format.Channels(); len(pixels) != want {
		return fmt.Errorf("%w: got %v bytes, want %v", ErrTextureData, len(pixels), want)
	}
	t.Bind()
	t.ctx.fn.PixelStorei(glapi.UNPACK_ALIGNMENT, 1)
	t.ctx.fn.TexSubImage2D(glapi.TEXTURE_2D, 0, x, y, w, h, uint32(t.format), glapi.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	t.ctx.fn.GenerateMipmap(glapi.TEXTURE_2D)
	t.Unbind()
	return nil
}

// Data reads the base level back from the driver.
func (t *Texture) Data() []byte {
	if !t.IsValid() {
		misuse(t.context(), "texture", "readback")
		return nil
	}
	// TODO read back in rows to bound the staging allocation for large textures
	data := make([]byte, int(t.width)*int(t.height)*t.format.Channels())
	t.Bind()
	t.ctx.fn.PixelStorei(glapi.PACK_ALIGNMENT, 1)
	t.ctx.fn.GetTexImage(glapi.TEXTURE_2D, 0, uint32(t.format), glapi.UNSIGNED_BYTE, unsafe.Pointer(&data[0]))
	t.Unbind()
	return data
}

// Bind binds the texture to the active texture unit.
func (t *Texture) Bind() {
	if !t.IsValid() {
		misuse(t.context(), "texture", "bind")
		return
	}
	t.ctx.fn.BindTexture(glapi.TEXTURE_2D, t.id)
}

// Unbind binds texture 0 to the active texture unit.
func (t *Texture) Unbind() {
	if t == nil || t.ctx == nil {
		return
	}
	t.ctx.fn.BindTexture(glapi.TEXTURE_2D, 0)
}

// BindUnit binds the texture to texture unit n. Unit 0 is left active.
func (t *Texture) BindUnit(n uint32) {
	if !t.IsValid() {
		misuse(t.context(), "texture", "bind")
		return
	}
	t.ctx.fn.ActiveTexture(glapi.TEXTURE0 + n)
	t.ctx.fn.BindTexture(glapi.TEXTURE_2D, t.id)
	t.ctx.fn.ActiveTexture(glapi.TEXTURE0)
}

// UnbindUnit binds texture 0 to texture unit n. Unit 0 is left active.
func (t *Texture) UnbindUnit(n uint32) {
	if t == nil || t.ctx == nil {
		return
	}
	t.ctx.fn.ActiveTexture(glapi.TEXTURE0 + n)
	t.ctx.fn.BindTexture(glapi.TEXTURE_2D, 0)
	t.ctx.fn.ActiveTexture(glapi.TEXTURE0)
}

func (t *Texture) Width() int32 {
	return t.width
}

func (t *Texture) Height() int32 {
	return t.height
}

// Format returns the pixel format the texture was created with.
func (t *Texture) Format() Format {
	return t.format
}

func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Texture) IsValid() bool {
	return t != nil && t.id != 0
}

// Take moves ownership of the texture into a new wrapper, leaving t
// unallocated.
func (t *Texture) Take() *Texture {
	if t == nil {
		return nil
	}
	moved := &Texture{ctx: t.ctx, id: t.id, width: t.width, height: t.height, format: t.format}
	t.id = 0
	return moved
}

// Destroy frees the texture.
func (t *Texture) Destroy() {
	if !t.IsValid() {
		return
	}
	t.ctx.fn.DeleteTexture(t.id)
	t.id = 0
}

func (t *Texture) context() *Context {
	if t == nil {
		return nil
	}
	return t.ctx
}
