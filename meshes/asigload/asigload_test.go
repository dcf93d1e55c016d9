package asigload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/assimp-go/asig"
)

// Quad made of two counter-clockwise triangles
const quadObj = `v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

func TestLoadGeometry(t *testing.T) {

	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadObj), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadGeometry(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Indices) != 6 {
		t.Fatalf("expected 6 indices; got %d", len(g.Indices))
	}

	for i, n := range g.Normals {
		if n.Z() != 1 {
			t.Fatalf("expected normal %d to face +z; got %v", i, n.Data)
		}
	}
}

func TestLoadGeometryMissingFile(t *testing.T) {

	if _, err := LoadGeometry(filepath.Join(t.TempDir(), "missing.obj"), 0); err == nil {
		t.Fatal("expected error loading a missing file")
	}
}

func TestFlattenFacesOffsetsIndices(t *testing.T) {

	faces := []asig.Face{{Indices: []uint{0, 1, 2}}}
	indices, err := flattenFaces(faces, 10)
	if err != nil {
		t.Fatal(err)
	}

	if indices[0] != 10 || indices[1] != 11 || indices[2] != 12 {
		t.Fatalf("expected indices offset by the base vertex; got %v", indices)
	}

	if _, err := flattenFaces([]asig.Face{{Indices: []uint{0, 1, 2, 3}}}, 0); err == nil {
		t.Fatal("expected error for a non-triangle face")
	}
}
