package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/logger"
)

const floatSize = 4

// Mesh is the GPU-side handle bundle for uploaded mesh buffers.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// validate checks the buffers against the GPU format contract.
func validate(b *mesh.Buffers) error {
	if b == nil || len(b.Vertices) == 0 || len(b.Indices) == 0 {
		return errors.New("empty mesh")
	}
	if b.Layout.Stride <= 0 || len(b.Vertices)%b.Layout.Stride != 0 {
		return fmt.Errorf("vertex data (%d floats) does not match stride %d", len(b.Vertices), b.Layout.Stride)
	}
	if n := b.VertexCount(); n > mesh.MaxVertices {
		return fmt.Errorf("mesh has %d vertices, 16-bit indices address at most %d", n, mesh.MaxVertices)
	}
	for _, a := range b.Layout.Attributes {
		if a.Offset+int(a.Size) > b.Layout.Stride {
			return fmt.Errorf("attribute %d overruns stride %d", a.Location, b.Layout.Stride)
		}
	}
	return nil
}

// Upload copies mesh buffers into a new VAO with interleaved VBO and EBO.
func (r *Renderer) Upload(b *mesh.Buffers) (*Mesh, error) {
	if err := validate(b); err != nil {
		return nil, err
	}

	m := &Mesh{IndexCount: int32(b.IndexCount())}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*floatSize, gl.Ptr(b.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*2, gl.Ptr(b.Indices), gl.STATIC_DRAW)

	stride := int32(b.Layout.Stride * floatSize)
	for _, a := range b.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(a.Offset*floatSize))
		gl.EnableVertexAttribArray(a.Location)
	}

	// The EBO binding is VAO state, so only the array buffer is unbound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.VAO),
		zap.Int("vertices", b.VertexCount()),
		zap.Int32("indices", m.IndexCount),
	)
	return m, nil
}

// Draw issues the indexed draw call for the mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	*m = Mesh{}
}
