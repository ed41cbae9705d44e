package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ember3d/ember/utility/epak"
)

func TestShaderTypeForName(t *testing.T) {
	cases := map[string]ShaderType{
		"default.vert.spv":  VertexShaderType,
		"default.frag.spv":  FragmentShaderType,
		"default.vert":      UnknownShaderType,
		"too.many.dots.spv": UnknownShaderType,
		"default.geom.spv":  UnknownShaderType,
	}
	for name, expected := range cases {
		if got := shaderTypeForName(name); got != expected {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}
}

func writeShaderDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]byte{
		"default.vert.spv":  []byte("vertex bytecode"),
		"default.frag.spv":  []byte("fragment bytecode"),
		"notes.txt":         []byte("not a shader"),
		"bad.name.vert.spv": []byte("skipped"),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadShaderFilesFromDirectory(t *testing.T) {
	files, types, err := loadShaderFilesFromDirectory(writeShaderDir(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || len(types) != 2 {
		t.Fatalf("expected the two well-named shaders, got %v", files)
	}
}

func TestLoadShadersFromDirectory(t *testing.T) {
	r := &VulkanRenderer{
		configuration: RendererConfiguration{ShaderDirectory: writeShaderDir(t)},
	}
	vertex, fragment, err := r.loadShaders()
	if err != nil {
		t.Fatal(err)
	}
	if string(vertex) != "vertex bytecode" {
		t.Errorf("unexpected vertex bytecode %q", vertex)
	}
	if string(fragment) != "fragment bytecode" {
		t.Errorf("unexpected fragment bytecode %q", fragment)
	}
}

func TestLoadShadersPrefersExplicitBlobs(t *testing.T) {
	r := &VulkanRenderer{
		configuration: RendererConfiguration{
			VertexShader:    []byte("explicit vertex"),
			FragmentShader:  []byte("explicit fragment"),
			ShaderDirectory: writeShaderDir(t),
		},
	}
	vertex, fragment, err := r.loadShaders()
	if err != nil {
		t.Fatal(err)
	}
	if string(vertex) != "explicit vertex" || string(fragment) != "explicit fragment" {
		t.Error("explicit bytecode blobs must win over directory loading")
	}
}

func TestLoadShadersFromArchive(t *testing.T) {
	builder, err := epak.NewBuilder(epak.Header{
		Author:      "test",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("default.vert.spv", bytes.NewReader([]byte("archived vertex"))); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("default.frag.spv", bytes.NewReader([]byte("archived fragment"))); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "shaders.epak")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := builder.WriteTo(out); err != nil {
		t.Fatal(err)
	}
	out.Close()

	vertex, fragment, err := loadShadersFromArchive(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(vertex) != "archived vertex" {
		t.Errorf("unexpected vertex bytecode %q", vertex)
	}
	if string(fragment) != "archived fragment" {
		t.Errorf("unexpected fragment bytecode %q", fragment)
	}
}

func TestLoadShadersNothingConfigured(t *testing.T) {
	r := &VulkanRenderer{}
	if _, _, err := r.loadShaders(); err != ErrNoVertexShader {
		t.Errorf("expected ErrNoVertexShader, got %v", err)
	}
}
