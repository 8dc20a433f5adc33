package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gregjohnson2017/glsu/pkg/camera"
	"github.com/gregjohnson2017/glsu/pkg/font"
	"github.com/gregjohnson2017/glsu/pkg/gfx"
)

// quadLayout is position then texture coordinates.
var quadLayout = gfx.MustPattern("3f2f")

type gridVertex struct {
	Position [3]float32
}

// scene owns every GPU object the demo draws.
type scene struct {
	ctx *gfx.Context

	gridProg  *gfx.ShaderProgram
	gridVBO   *gfx.BufferObject
	grid      *gfx.VertexArrayObject
	gridCount int

	quadProg *gfx.ShaderProgram
	quadVBO  *gfx.BufferObject
	quad     *gfx.IndexedVertexArrayObject
	tex      *gfx.Texture

	textProg  *gfx.ShaderProgram
	textVBO   *gfx.BufferObject
	text      *gfx.VertexArrayObject
	textCount int
	font      *font.Font
	label     string
}

func newScene(ctx *gfx.Context, img image.Image, fontSize int32) (*scene, error) {
	s := &scene{ctx: ctx}
	for _, step := range []func() error{
		func() error { return s.initGrid(10, 1) },
		func() error { return s.initQuad(img) },
		func() error { return s.initText(fontSize) },
	} {
		if err := step(); err != nil {
			s.destroy()
			return nil, err
		}
	}
	return s, nil
}

// initGrid builds a square of lines on the y = 0 plane, half units from the
// origin in each direction, spaced step apart.
func (s *scene) initGrid(half int, step float32) error {
	var err error
	if s.gridProg, err = gfx.NewShaderProgram(s.ctx, gfx.PositionVertex, gfx.SolidColorFragment); err != nil {
		return err
	}
	layout, err := gfx.LayoutOf(gridVertex{})
	if err != nil {
		return err
	}
	var verts []gridVertex
	extent := float32(half) * step
	for i := -half; i <= half; i++ {
		p := float32(i) * step
		verts = append(verts,
			gridVertex{[3]float32{p, 0, -extent}}, gridVertex{[3]float32{p, 0, extent}},
			gridVertex{[3]float32{-extent, 0, p}}, gridVertex{[3]float32{extent, 0, p}},
		)
	}
	flat := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		flat = append(flat, v.Position[:]...)
	}
	if s.gridVBO, err = gfx.NewBufferObject(s.ctx, gfx.ArrayBuffer); err != nil {
		return err
	}
	if err = s.gridVBO.SetVertices(flat, gfx.StaticDraw); err != nil {
		return err
	}
	if s.grid, err = gfx.NewVertexArrayObject(s.ctx, gfx.Lines); err != nil {
		return err
	}
	if err = s.grid.AddBuffer(s.gridVBO, layout); err != nil {
		return err
	}
	s.gridCount = s.grid.VertexCount()
	return s.gridProg.SetUniform("uni_color", mgl32.Vec4{0.4, 0.4, 0.45, 1})
}

// initQuad uploads img onto a quad standing on the grid, keeping its aspect.
func (s *scene) initQuad(img image.Image) error {
	var err error
	if s.quadProg, err = gfx.NewShaderProgram(s.ctx, gfx.MeshVertex, gfx.CheckerShaderFragment); err != nil {
		return err
	}
	if s.tex, err = gfx.NewTextureFromImage(s.ctx, img); err != nil {
		return err
	}
	s.tex.SetWrapMode(gfx.CoordS, gfx.ClampToEdge)
	s.tex.SetWrapMode(gfx.CoordT, gfx.ClampToEdge)

	w := float32(s.tex.Width()) / float32(s.tex.Height())
	h := float32(1)
	if w > 1 {
		w, h = 1, 1/w
	}
	h *= 2
	w *= 2
	vertices := []float32{
		-w / 2, h, 0, 0, 0,
		w / 2, h, 0, 1, 0,
		w / 2, 0, 0, 1, 1,
		-w / 2, 0, 0, 0, 1,
	}
	if s.quadVBO, err = gfx.NewBufferObject(s.ctx, gfx.ArrayBuffer); err != nil {
		return err
	}
	if err = s.quadVBO.SetVertices(vertices, gfx.StaticDraw); err != nil {
		return err
	}
	if s.quad, err = gfx.NewIndexedVertexArrayObject(s.ctx, gfx.Triangles); err != nil {
		return err
	}
	if err = s.quad.AddBuffer(s.quadVBO, quadLayout); err != nil {
		return err
	}
	return s.quad.SetIndices([]uint16{0, 1, 2, 2, 3, 0}, gfx.StaticDraw)
}

func (s *scene) initText(size int32) error {
	var err error
	if s.font, err = font.Default(s.ctx, size); err != nil {
		return err
	}
	if s.textProg, err = gfx.NewShaderProgram(s.ctx, gfx.GlyphShaderVertex, gfx.GlyphShaderFragment); err != nil {
		return err
	}
	if s.textVBO, err = gfx.NewBufferObject(s.ctx, gfx.ArrayBuffer); err != nil {
		return err
	}
	if s.text, err = gfx.NewVertexArrayObject(s.ctx, gfx.Triangles); err != nil {
		return err
	}
	if err = s.text.AddBuffer(s.textVBO, font.Layout); err != nil {
		return err
	}
	tex := s.font.Texture()
	if err = s.textProg.SetUniform("tex_size", mgl32.Vec2{float32(tex.Width()), float32(tex.Height())}); err != nil {
		return err
	}
	return s.textProg.SetUniform("text_color", mgl32.Vec4{1, 1, 1, 1})
}

// setLabel rebuilds the text vertices when str changes.
func (s *scene) setLabel(str string) error {
	if str == s.label {
		return nil
	}
	s.label = str
	verts := s.font.MapString(str, 8, 8, font.Align{V: font.AlignAbove, H: font.AlignLeft})
	s.textCount = len(verts) / 4
	if len(verts) == 0 {
		return nil
	}
	return s.textVBO.SetVertices(verts, gfx.DynamicDraw)
}

func (s *scene) draw(cam *camera.Camera, width, height int32) error {
	projection := mgl32.Perspective(mgl32.DegToRad(60), float32(width)/float32(height), 0.1, 100)
	view := cam.View()

	for _, p := range []*gfx.ShaderProgram{s.gridProg, s.quadProg} {
		if err := p.SetUniform("projection", projection); err != nil {
			return err
		}
		if err := p.SetUniform("view", view); err != nil {
			return err
		}
		if err := p.SetUniform("model", mgl32.Ident4()); err != nil {
			return err
		}
	}

	err := gfx.WithBound(func() error {
		s.grid.Draw(0, s.gridCount)
		return nil
	}, s.gridProg)
	if err != nil {
		return err
	}

	if err = s.quadProg.SetTextures([]string{"frag_tex"}, []*gfx.Texture{s.tex}); err != nil {
		return err
	}
	err = gfx.WithBound(func() error {
		s.quad.DrawElements()
		return nil
	}, s.quadProg)
	if err != nil {
		return err
	}
	s.tex.UnbindUnit(0)

	if s.textCount == 0 {
		return nil
	}
	if err = s.textProg.SetUniform("screen_size", mgl32.Vec2{float32(width), float32(height)}); err != nil {
		return err
	}
	if err = s.textProg.SetTextures([]string{"frag_tex"}, []*gfx.Texture{s.font.Texture()}); err != nil {
		return err
	}
	err = gfx.WithBound(func() error {
		s.text.Draw(0, s.textCount)
		return nil
	}, s.textProg)
	s.font.Texture().UnbindUnit(0)
	return err
}

func (s *scene) destroy() {
	s.text.Destroy()
	s.textVBO.Destroy()
	s.textProg.Destroy()
	if s.font != nil {
		s.font.Destroy()
	}
	s.quad.Destroy()
	s.quadVBO.Destroy()
	s.quadProg.Destroy()
	s.tex.Destroy()
	s.grid.Destroy()
	s.gridVBO.Destroy()
	s.gridProg.Destroy()
}

// gradient is shown when no image was chosen. Alpha fades towards the top so
// the checker board behind it shows.
func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: uint8(255 * y / h),
			})
		}
	}
	return img
}

func labelFor(fps int, cam *camera.Camera) string {
	p := cam.Position()
	return fmt.Sprintf("%d fps  (%.1f, %.1f, %.1f)  yaw %.0f pitch %.0f", fps, p.X(), p.Y(), p.Z(), cam.Yaw(), cam.Pitch())
}
