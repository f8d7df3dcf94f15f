package renderer

import (
	"testing"

	"github.com/Faultbox/sceneview/internal/engine/mesh"
)

func TestValidate(t *testing.T) {
	big := &mesh.Buffers{
		Vertices: make([]float32, (mesh.MaxVertices+1)*5),
		Indices:  []uint16{0, 1, 2},
		Layout:   mesh.LayoutPosTex,
	}

	tests := []struct {
		name    string
		b       *mesh.Buffers
		wantErr bool
	}{
		{"cylinder", mesh.Cylinder(0.5, 1, 36, 36), false},
		{"sphere", mesh.Sphere(0.25, 36, 36), false},
		{"plane", mesh.Plane(), false},
		{"nil", nil, true},
		{"empty", &mesh.Buffers{Layout: mesh.LayoutPosTex}, true},
		{"ragged", &mesh.Buffers{Vertices: make([]float32, 7), Indices: []uint16{0}, Layout: mesh.LayoutPosTex}, true},
		{"too many vertices", big, true},
		{"overrun", &mesh.Buffers{
			Vertices: make([]float32, 5),
			Indices:  []uint16{0},
			Layout:   mesh.Layout{Stride: 5, Attributes: []mesh.Attribute{{Location: 1, Size: 4, Offset: 3}}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
