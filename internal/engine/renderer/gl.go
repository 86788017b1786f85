package renderer

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/engine/shader"
	"github.com/Faultbox/bin2hdr/internal/engine/window"
	"github.com/Faultbox/bin2hdr/internal/logger"
)

type glPainter struct {
	win       *window.Window
	program   uint32
	rectLoc   int32
	bitmapLoc int32
	vao       uint32
	vbo       uint32
	texture   uint32
}

func newGLPainter(win *window.Window) (*glPainter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	p := &glPainter{win: win}

	var err error
	p.program, err = shader.CompileProgram(shader.BlitVertex, shader.BlitFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	if p.rectLoc, err = shader.Uniform(p.program, "uRect"); err != nil {
		p.close()
		return nil, err
	}
	if p.bitmapLoc, err = shader.Uniform(p.program, "uBitmap"); err != nil {
		p.close()
		return nil, err
	}

	p.createQuad()
	return p, nil
}

// createQuad builds a unit quad drawn as a triangle strip; (0,0) is the
// top-left corner.
func (p *glPainter) createQuad() {
	corners := []float32{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, unsafe.Pointer(&corners[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (p *glPainter) upload(img *image.RGBA) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return fmt.Errorf("empty image %dx%d", w, h)
	}

	if p.texture == 0 {
		gl.GenTextures(1, &p.texture)
	}
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glTexImage2D: error 0x%X", code)
	}
	return nil
}

func (p *glPainter) paint(dst image.Rectangle, winW, winH int, bg color.RGBA) error {
	gl.Viewport(0, 0, int32(winW), int32(winH))
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	rect := ndcRect(dst, winW, winH)
	gl.UseProgram(p.program)
	gl.Uniform4f(p.rectLoc, rect[0], rect[1], rect[2], rect[3])
	gl.Uniform1i(p.bitmapLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	p.win.SwapBuffers()
	return nil
}

func (p *glPainter) close() {
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
