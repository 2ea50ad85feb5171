package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const quadVertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 texCoord;
uniform mat4 proj;
out vec2 uv;
void main() {
	uv = texCoord;
	gl_Position = proj * vec4(position, 0.0, 1.0);
}`

const quadFragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D grid;
out vec4 fragColor;
void main() {
	fragColor = vec4(texture(grid, uv).rgb, 1.0);
}`

// GridQuad draws a grid texture over the rectangle [0,w]x[0,h] in grid units.
type GridQuad struct {
	shader *Shader
	vao    uint32
	vbo    uint32
}

// NewGridQuad builds the quad geometry for a w×h grid
func NewGridQuad(w, h int) (*GridQuad, error) {
	shader, err := NewShader(quadVertexSrc, quadFragmentSrc)
	if err != nil {
		return nil, err
	}

	fw, fh := float32(w), float32(h)
	// x, y, u, v; two triangles
	vertices := []float32{
		0, 0, 0, 0,
		fw, 0, 1, 0,
		fw, fh, 1, 1,
		fw, fh, 1, 1,
		0, fh, 0, 1,
		0, 0, 0, 0,
	}

	q := &GridQuad{shader: shader}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return q, nil
}

// Draw renders tex with the given projection
func (q *GridQuad) Draw(proj mgl32.Mat4, tex *GridTexture) {
	q.shader.Use()
	q.shader.SetMatrix4("proj", proj)
	q.shader.SetInt("grid", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Dispose cleans up OpenGL resources
func (q *GridQuad) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	q.shader.Delete()
}
