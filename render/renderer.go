package render

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wiggle/assets"
	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
)

//go:embed quad.kage
var quadShader []byte

// Renderer draws the displaced quad and the optional stroked polyline onto
// the target bound with Begin. It implements client.Backend.
type Renderer struct {
	log *slog.Logger

	shader  *ebiten.Shader
	texture *ebiten.Image
	white   *ebiten.Image

	half   float64
	tint   color.RGBA
	quad   [4]geom.Vec2
	quadUV [4]geom.Vec2

	line      []geom.Vec2
	lineIdx   []uint16
	lineColor color.RGBA
	showLine  bool

	displacement geom.Vec2
	canvas       geom.Vec2
	target       *ebiten.Image

	verts    []ebiten.Vertex
	uniforms map[string]any
}

// New compiles the quad shader and loads the texture. Either failing is
// fatal for the caller. The canvas starts at the configured window size.
func New(cfg *config.Config, log *slog.Logger) (*Renderer, error) {
	if log == nil {
		log = slog.Default()
	}
	shader, err := ebiten.NewShader(quadShader)
	if err != nil {
		return nil, fmt.Errorf("render: compile quad shader: %w", err)
	}
	tex, err := assets.LoadImage(cfg.Quad.Texture)
	if err != nil {
		return nil, fmt.Errorf("render: load texture: %w", err)
	}
	tint, ok := config.Color(cfg.Quad.Tint)
	if !ok {
		return nil, fmt.Errorf("render: unknown tint %q", cfg.Quad.Tint)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	r := &Renderer{
		log:      log.With("component", "render"),
		shader:   shader,
		texture:  tex,
		white:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		half:     cfg.Quad.HalfSize,
		tint:     tint,
		canvas:   geom.V(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		uniforms: map[string]any{},
	}
	r.quad, r.quadUV = QuadCorners(cfg.Quad.HalfSize)
	if err := r.SetPolyline(cfg.Polyline); err != nil {
		return nil, err
	}
	return r, nil
}

// SetPolyline rebuilds the polyline mesh. A polyline shown for no variant
// is dropped.
func (r *Renderer) SetPolyline(cfg config.PolylineConfig) error {
	if len(cfg.Variants) == 0 {
		r.line, r.lineIdx = nil, nil
		return nil
	}
	verts, idx, err := PolylineMesh(cfg)
	if err != nil {
		return err
	}
	c, ok := config.Color(cfg.Color)
	if !ok {
		return fmt.Errorf("render: unknown polyline color %q", cfg.Color)
	}
	r.line, r.lineIdx, r.lineColor = verts, idx, c
	r.log.Debug("polyline rebuilt", "points", len(cfg.Points), "vertices", len(verts))
	return nil
}

func (r *Renderer) ShowPolyline(show bool) { r.showLine = show }

// Begin binds the image the next DrawFrame draws to.
func (r *Renderer) Begin(target *ebiten.Image) { r.target = target }

func (r *Renderer) SetDisplacement(x, y float32) {
	r.displacement = geom.V(float64(x), float64(y))
}

func (r *Renderer) SetCanvasSize(w, h float32) {
	r.canvas = geom.V(float64(w), float64(h))
}

func (r *Renderer) DrawFrame() {
	if r.target == nil {
		return
	}
	r.target.Fill(color.Black)
	r.drawQuad()
	if r.showLine && len(r.line) > 0 {
		r.drawLine()
	}
}

func (r *Renderer) drawQuad() {
	tw, th := r.texture.Bounds().Dx(), r.texture.Bounds().Dy()

	r.verts = r.verts[:0]
	for i, p := range r.quad {
		dx, dy := ToScreen(p, r.displacement, r.canvas).XY()
		u, v := r.quadUV[i].XY()
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   u * float32(tw),
			SrcY:   v * float32(th),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}

	dispX, dispY := r.displacement.XY()
	canvasW, canvasH := r.canvas.XY()
	r.uniforms["Displacement"] = []float32{dispX, dispY}
	r.uniforms["CanvasSize"] = []float32{canvasW, canvasH}
	r.uniforms["Tint"] = []float32{
		float32(r.tint.R) / 0xff,
		float32(r.tint.G) / 0xff,
		float32(r.tint.B) / 0xff,
		float32(r.tint.A) / 0xff,
	}
	r.uniforms["HalfSize"] = float32(r.half)

	op := &ebiten.DrawTrianglesShaderOptions{Uniforms: r.uniforms}
	op.Images[0] = r.texture
	r.target.DrawTrianglesShader(r.verts, quadIndices, r.shader, op)
}

func (r *Renderer) drawLine() {
	cr := float32(r.lineColor.R) / 0xff
	cg := float32(r.lineColor.G) / 0xff
	cb := float32(r.lineColor.B) / 0xff
	ca := float32(r.lineColor.A) / 0xff

	r.verts = r.verts[:0]
	for _, p := range r.line {
		// The line stays put; only the quad follows the model.
		dx, dy := ToScreen(p, geom.Vec2{}, r.canvas).XY()
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.target.DrawTriangles(r.verts, r.lineIdx, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
