// Package asigload builds mesh geometry from model files (fbx, obj, gltf...) through assimp.
package asigload

import (
	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/texcube/logging"
	"github.com/bloeys/texcube/meshes"
	"github.com/pkg/errors"
)

var logger = logging.New("asigload")

// DefaultPostProcessFlags are always applied on top of the flags passed to LoadGeometry
var DefaultPostProcessFlags asig.PostProcess = asig.PostProcessTriangulate

// LoadGeometry merges all meshes of the model file into one geometry
func LoadGeometry(modelPath string, postProcessFlags asig.PostProcess) (*meshes.Geometry, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultPostProcessFlags|postProcessFlags)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model '%s'", modelPath)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, errors.Errorf("no meshes found in file '%s'", modelPath)
	}

	g := &meshes.Geometry{}
	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]
		if len(sceneMesh.Normals) != len(sceneMesh.Vertices) {
			return nil, errors.Errorf("mesh %d of '%s' has no normals", i, modelPath)
		}

		// UV0 is optional in the file but required by the vertex layout
		uv0s := make([]gglm.Vec2, len(sceneMesh.Vertices))
		if len(sceneMesh.TexCoords[0]) > 0 {
			uv0s = v3sToV2s(sceneMesh.TexCoords[0])
		}

		baseVertex := uint32(len(g.Positions))
		g.Positions = append(g.Positions, sceneMesh.Vertices...)
		g.Normals = append(g.Normals, sceneMesh.Normals...)
		g.UV0s = append(g.UV0s, uv0s...)

		indices, err := flattenFaces(sceneMesh.Faces, baseVertex)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %d of '%s'", i, modelPath)
		}

		g.Indices = append(g.Indices, indices...)
	}

	logger.Debugf("Loaded '%s' with %d submesh(es), %d vertices and %d indices", modelPath, len(scene.Meshes), len(g.Positions), len(g.Indices))
	if err := g.Validate(); err != nil {
		return nil, errors.Wrapf(err, "model '%s'", modelPath)
	}

	return g, nil
}

func v3sToV2s(v3s []gglm.Vec3) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, len(v3s))
	for i := 0; i < len(v3s); i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].X(), v3s[i].Y()},
		}
	}

	return v2s
}

func flattenFaces(faces []asig.Face, baseVertex uint32) ([]uint32, error) {

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		if len(faces[i].Indices) != 3 {
			return nil, errors.Errorf("face %d doesn't have 3 indices. Index count: %d", i, len(faces[i].Indices))
		}

		uints[i*3+0] = baseVertex + uint32(faces[i].Indices[0])
		uints[i*3+1] = baseVertex + uint32(faces[i].Indices[1])
		uints[i*3+2] = baseVertex + uint32(faces[i].Indices[2])
	}

	return uints, nil
}
