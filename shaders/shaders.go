// Package shaders parses combined shader libraries.
//
// A library is a single GLSL file holding any number of entry points, each
// introduced by a '//shader:<stage> <name>' line, for example:
//
//	//shader:vertex vertex_transform
//	#version 410 core
//	//bind:buffer Constants 1
//	...
//	//shader:fragment fragment_lit_textured
//	#version 410 core
//	//bind:texture diffuseTex 0
//	...
//
// '//bind:<buffer|texture> <glsl name> <slot>' lines map uniform blocks and
// samplers to the slots commands bind resources at.
package shaders

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
)

var (
	ErrNoEntryPoint = errors.New("shader entry point not found")
	ErrBadLibrary   = errors.New("malformed shader library")
)

const (
	sectionPrefix = "//shader:"
	bindPrefix    = "//bind:"
)

type Binding struct {
	Kind BindingKind
	// Name is the uniform block or sampler name in the source
	Name string
	Slot int
}

// Function is one entry point of a library with its source ready to compile
type Function struct {
	Name     string
	Stage    Stage
	Source   []byte
	Bindings []Binding
}

type Library struct {
	Label     string
	functions map[string]*Function
}

// Function looks up an entry point by name
func (l *Library) Function(name string) (*Function, error) {

	f, ok := l.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' in library '%s'", ErrNoEntryPoint, name, l.Label)
	}

	return f, nil
}

func (l *Library) FunctionNames() []string {

	names := make([]string, 0, len(l.functions))
	for name := range l.functions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func LoadLibrary(shaderPath string) (*Library, error) {

	src, err := os.ReadFile(shaderPath)
	if err != nil {
		return nil, err
	}

	return ParseLibrary(shaderPath, src)
}

func ParseLibrary(label string, src []byte) (*Library, error) {

	sections := bytes.Split(src, []byte(sectionPrefix))
	if len(sections) < 2 {
		return nil, fmt.Errorf("%w: '%s' has no '%s<stage> <name>' sections", ErrBadLibrary, label, sectionPrefix)
	}

	lib := &Library{
		Label:     label,
		functions: make(map[string]*Function, len(sections)-1),
	}

	// Whatever comes before the first section is ignored, which allows for a file header
	for i := 1; i < len(sections); i++ {

		f, err := parseFunction(sections[i])
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' section %d: %s", ErrBadLibrary, label, i, err.Error())
		}

		if _, ok := lib.functions[f.Name]; ok {
			return nil, fmt.Errorf("%w: '%s' defines entry point '%s' more than once", ErrBadLibrary, label, f.Name)
		}

		lib.functions[f.Name] = f
	}

	return lib, nil
}

func parseFunction(section []byte) (*Function, error) {

	header, src, _ := bytes.Cut(section, []byte("\n"))
	fields := bytes.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected '<stage> <name>' header but got '%s'", bytes.TrimSpace(header))
	}

	f := &Function{
		Name:   string(fields[1]),
		Source: src,
	}

	switch string(fields[0]) {
	case "vertex":
		f.Stage = Stage_Vertex
	case "fragment":
		f.Stage = Stage_Fragment
	case "geometry":
		f.Stage = Stage_Geometry
	default:
		return nil, fmt.Errorf("unknown shader stage '%s'. Must be 'vertex' or 'fragment' or 'geometry'", fields[0])
	}

	if len(bytes.TrimSpace(src)) == 0 {
		return nil, fmt.Errorf("entry point '%s' has no source", f.Name)
	}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	for scanner.Scan() {

		line := bytes.TrimSpace(scanner.Bytes())
		if !bytes.HasPrefix(line, []byte(bindPrefix)) {
			continue
		}

		b, err := parseBinding(line[len(bindPrefix):])
		if err != nil {
			return nil, fmt.Errorf("entry point '%s': %s", f.Name, err.Error())
		}

		f.Bindings = append(f.Bindings, b)
	}

	return f, scanner.Err()
}

func parseBinding(line []byte) (Binding, error) {

	fields := bytes.Fields(line)
	if len(fields) != 3 {
		return Binding{}, fmt.Errorf("expected '%s<kind> <name> <slot>' but got '%s%s'", bindPrefix, bindPrefix, line)
	}

	var b Binding
	switch string(fields[0]) {
	case "buffer":
		b.Kind = BindingKind_Buffer
	case "texture":
		b.Kind = BindingKind_Texture
	default:
		return Binding{}, fmt.Errorf("unknown binding kind '%s'. Must be 'buffer' or 'texture'", fields[0])
	}

	slot, err := strconv.Atoi(string(fields[2]))
	if err != nil || slot < 0 {
		return Binding{}, fmt.Errorf("invalid slot '%s' for binding '%s'", fields[2], fields[1])
	}

	b.Name = string(fields[1])
	b.Slot = slot
	return b, nil
}
