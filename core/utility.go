package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/ember3d/ember/utility/epak"
)

const shaderSuffix = ".spv"

// loadShaderFilesFromDirectory gets the list of files that are compiled
// shaders. It is important that the file name does not contain more than
// two dots, the first is always the name of the shader, second is type,
// and the third one ensures that the shader is compiled (only compiled
// shaders have an .spv extension). All shader files will be loaded.
func loadShaderFilesFromDirectory(dir string) ([]string, []ShaderType, error) {
	var (
		shaders     []string
		shaderTypes []ShaderType
	)
	if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if strings.HasSuffix(f.Name(), shaderSuffix) {
			shader := strings.TrimSuffix(f.Name(), shaderSuffix)
			nodes := strings.Split(shader, ".")

			if len(nodes) != 2 {
				return nil
			}

			suffix := nodes[len(nodes)-1]
			switch suffix {
			case "frag":
				shaderTypes = append(shaderTypes, FragmentShaderType)
				shaders = append(shaders, path)
			case "vert":
				shaderTypes = append(shaderTypes, VertexShaderType)
				shaders = append(shaders, path)
			default:
				return nil
			}
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return shaders, shaderTypes, nil
}

// shaderTypeForName maps an archive entry name like "triangle.vert.spv"
// onto its shader stage, following the same naming rule as the directory
// scanner.
func shaderTypeForName(name string) ShaderType {
	if !strings.HasSuffix(name, shaderSuffix) {
		return UnknownShaderType
	}
	nodes := strings.Split(strings.TrimSuffix(name, shaderSuffix), ".")
	if len(nodes) != 2 {
		return UnknownShaderType
	}
	switch nodes[1] {
	case "vert":
		return VertexShaderType
	case "frag":
		return FragmentShaderType
	}
	return UnknownShaderType
}

// loadShadersFromArchive reads compiled shader bytecode out of an epak
// archive, keyed by the same name.type.spv convention as directory loads.
func loadShadersFromArchive(path string) (vertex, fragment []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	archive, err := epak.Open(f)
	if err != nil {
		return nil, nil, fmt.Errorf("epak.Open(): %w", err)
	}

	for _, entry := range archive.Index() {
		switch shaderTypeForName(entry.Name) {
		case VertexShaderType:
			if vertex, err = archive.ReadAll(entry.Name); err != nil {
				return nil, nil, err
			}
		case FragmentShaderType:
			if fragment, err = archive.ReadAll(entry.Name); err != nil {
				return nil, nil, err
			}
		}
	}
	return vertex, fragment, nil
}

// loadShaders resolves the configured shader bytecode sources in order of
// precedence: explicit blobs, then an epak archive, then a directory of
// compiled .spv files.
func (v *VulkanRenderer) loadShaders() (vertex, fragment []byte, err error) {
	cfg := v.configuration
	if len(cfg.VertexShader) > 0 || len(cfg.FragmentShader) > 0 {
		return cfg.VertexShader, cfg.FragmentShader, nil
	}

	if cfg.ShaderArchive != "" {
		return loadShadersFromArchive(cfg.ShaderArchive)
	}

	if cfg.ShaderDirectory != "" {
		files, types, err := loadShaderFilesFromDirectory(cfg.ShaderDirectory)
		if err != nil {
			return nil, nil, err
		}
		for i, path := range files {
			contents, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, err
			}
			switch types[i] {
			case VertexShaderType:
				vertex = contents
			case FragmentShaderType:
				fragment = contents
			}
		}
		return vertex, fragment, nil
	}

	return nil, nil, ErrNoVertexShader
}

type sliceHeader struct {
	Data uintptr
	Len  int
	Cap  int
}

// SliceUint32 reslices bytes into a uint32, that is used
// to submit vulkan shaders for processing
func SliceUint32(data []byte) []uint32 {
	const m = 0x7fffffff
	return (*[m / 4]uint32)(unsafe.Pointer((*sliceHeader)(unsafe.Pointer(&data)).Data))[:len(data)/4]
}

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}
