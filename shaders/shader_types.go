package shaders

type Stage int32

const (
	Stage_Unknown Stage = iota
	Stage_Vertex
	Stage_Fragment
	Stage_Geometry
)

func (s Stage) String() string {

	switch s {
	case Stage_Vertex:
		return "vertex"
	case Stage_Fragment:
		return "fragment"
	case Stage_Geometry:
		return "geometry"
	}

	return "unknown"
}

type BindingKind int32

const (
	BindingKind_Unknown BindingKind = iota
	// BindingKind_Buffer binds a uniform block to a buffer slot
	BindingKind_Buffer
	// BindingKind_Texture binds a sampler uniform to a texture slot. The sampler state of the same slot applies to it.
	BindingKind_Texture
)

func (b BindingKind) String() string {

	switch b {
	case BindingKind_Buffer:
		return "buffer"
	case BindingKind_Texture:
		return "texture"
	}

	return "unknown"
}
