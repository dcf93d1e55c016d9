// Package res holds the resources bundled into the binary.
package res

import "embed"

//go:embed shaders/textured-mesh.glsl
var TexturedMeshShader []byte

// Textures holds the bundled images under 'textures/'
//
//go:embed textures
var Textures embed.FS
