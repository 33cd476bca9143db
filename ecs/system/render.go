package system

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dispfade/ecs"
	"github.com/milk9111/dispfade/ecs/component"
	"github.com/milk9111/dispfade/transition"
)

// RenderSystem draws the transition mesh. The Kage shader is compiled on the
// first draw and handed to every material; if that fails the CPU rendition
// of the same math is used.
type RenderSystem struct {
	// ForceCPU skips the shader path.
	ForceCPU bool

	compile     func() (*ebiten.Shader, error)
	shader      *ebiten.Shader
	shaderTried bool
	placeholder *ebiten.Image
	cpu         cpuFrame
	vertices    [4]ebiten.Vertex
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{compile: transition.NewShader}
}

func (r *RenderSystem) Update(w *ecs.World) {}

// UsingCPU reports whether frames come from the CPU fallback.
func (r *RenderSystem) UsingCPU() bool {
	return r.ForceCPU || (r.shaderTried && r.shader == nil)
}

// meshDraw is one mesh ready to be drawn this frame.
type meshDraw struct {
	mat  *component.ShaderMaterial
	quad MeshQuad
	cpu  bool
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	surfaceEntity, ok := w.First(component.SurfaceComponent.Kind().ID())
	if !ok {
		return
	}
	surface, ok := ecs.Get(w, surfaceEntity, component.SurfaceComponent.Kind())
	if !ok {
		return
	}
	screen.Fill(surface.ClearColor)

	b := screen.Bounds()
	for _, d := range r.plan(w, float32(b.Dx()), float32(b.Dy())) {
		if d.cpu {
			r.drawCPU(screen, d.quad, d.mat)
			continue
		}
		r.drawShader(screen, d.quad, d.mat)
	}
}

// plan lists the meshes to draw on a viewW x viewH screen. Nothing is drawn
// until the surface is ready.
func (r *RenderSystem) plan(w *ecs.World, viewW, viewH float32) []meshDraw {
	surfaceEntity, ok := w.First(component.SurfaceComponent.Kind().ID())
	if !ok {
		return nil
	}
	surface, ok := ecs.Get(w, surfaceEntity, component.SurfaceComponent.Kind())
	if !ok || !surface.Ready {
		return nil
	}

	r.ensureShader()

	var draws []meshDraw
	for _, e := range w.Query(component.TransitionMeshTagComponent.Kind().ID(), component.ShaderMaterialComponent.Kind().ID()) {
		mat, ok := ecs.Get(w, e, component.ShaderMaterialComponent.Kind())
		if !ok {
			continue
		}
		quad, ok := ProjectMesh(w, e, viewW, viewH)
		if !ok {
			continue
		}
		if mat.Shader == nil {
			mat.Shader = r.shader
		}
		draws = append(draws, meshDraw{
			mat:  mat,
			quad: quad,
			cpu:  r.ForceCPU || mat.Shader == nil,
		})
	}
	return draws
}

func (r *RenderSystem) ensureShader() {
	if r.ForceCPU || r.shaderTried {
		return
	}
	r.shaderTried = true
	if r.compile == nil {
		r.compile = transition.NewShader
	}
	shader, err := r.compile()
	if err != nil {
		log.Printf("render: %v; using cpu fallback", err)
		return
	}
	r.shader = shader
}

func (r *RenderSystem) drawShader(screen *ebiten.Image, quad MeshQuad, mat *component.ShaderMaterial) {
	var images [4]*ebiten.Image
	for i := 0; i < component.TextureSlotCount; i++ {
		img := mat.Textures[i]
		if img == nil {
			img = r.placeholderImage(mat.TextureWidth, mat.TextureHeight)
		}
		images[i] = img
	}

	r.setVertices(quad, float32(mat.TextureWidth), float32(mat.TextureHeight))
	screen.DrawTrianglesShader(r.vertices[:], quadIndices, mat.Shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: transition.Uniforms(mat.Transition, mat.DirectCoupling),
		Images:   images,
	})
}

func (r *RenderSystem) drawCPU(screen *ebiten.Image, quad MeshQuad, mat *component.ShaderMaterial) {
	frame := r.cpu.render(mat)
	if frame == nil {
		return
	}
	fb := frame.Bounds()
	r.setVertices(quad, float32(fb.Dx()), float32(fb.Dy()))
	screen.DrawTriangles(r.vertices[:], quadIndices, frame, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
}

// placeholderImage is a transparent stand-in for a texture still loading.
// Shader sources must all share one size.
func (r *RenderSystem) placeholderImage(w, h int) *ebiten.Image {
	if r.placeholder != nil {
		b := r.placeholder.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return r.placeholder
		}
		r.placeholder.Deallocate()
	}
	r.placeholder = ebiten.NewImage(w, h)
	return r.placeholder
}

func (r *RenderSystem) setVertices(quad MeshQuad, srcW, srcH float32) {
	src := [4][2]float32{{0, 0}, {srcW, 0}, {0, srcH}, {srcW, srcH}}
	for i := range r.vertices {
		r.vertices[i] = ebiten.Vertex{
			DstX:   quad[i][0],
			DstY:   quad[i][1],
			SrcX:   src[i][0],
			SrcY:   src[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

// cpuFrameKey is everything a CPU frame depends on.
type cpuFrameKey struct {
	transition float32
	direct     bool
	width      int
	height     int
	sources    [component.TextureSlotCount]image.Image
}

func frameKey(mat *component.ShaderMaterial) cpuFrameKey {
	return cpuFrameKey{
		transition: float32(mat.Transition),
		direct:     mat.DirectCoupling,
		width:      mat.TextureWidth,
		height:     mat.TextureHeight,
		sources:    mat.Pixels,
	}
}

// cpuFrame caches the last CPU-rendered frame.
type cpuFrame struct {
	img      *ebiten.Image
	rgba     *image.RGBA
	inputs   CPUInputs
	key      cpuFrameKey
	rendered bool
}

// stale reports whether a frame for key has to be rendered again.
func (c *cpuFrame) stale(key cpuFrameKey) bool {
	return !c.rendered || c.key != key
}

func (c *cpuFrame) render(mat *component.ShaderMaterial) *ebiten.Image {
	if mat.Pixels[component.SlotDisplacement] == nil {
		return nil
	}

	key := frameKey(mat)
	if !c.stale(key) {
		return c.img
	}
	if !c.rendered || c.key.sources != key.sources {
		c.inputs = NewCPUInputs(key.sources)
	}
	c.inputs.Transition = key.transition
	c.inputs.DirectCoupling = key.direct

	w, h := key.width, key.height
	if c.rgba == nil || c.rgba.Bounds().Dx() != w || c.rgba.Bounds().Dy() != h {
		c.rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		if c.img != nil {
			c.img.Deallocate()
		}
		c.img = ebiten.NewImage(w, h)
	}

	transition.Render(c.rgba, c.inputs.Inputs)
	c.img.WritePixels(c.rgba.Pix)
	c.key = key
	c.rendered = true
	return c.img
}
