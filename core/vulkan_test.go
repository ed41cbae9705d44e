package core_test

import (
	"testing"

	"github.com/ember3d/ember/core"
)

func TestSliceUint32(t *testing.T) {
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0, 0xFF}
	words := core.SliceUint32(data)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0] != 1 || words[1] != 2 {
		t.Errorf("unexpected word values %v", words)
	}
}

func BenchmarkSliceUint32Small(b *testing.B) {
	data := make([]byte, 100)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}

func BenchmarkSliceUint32Medium(b *testing.B) {
	data := make([]byte, 1000)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}

func BenchmarkSliceUint32Big(b *testing.B) {
	data := make([]byte, 100000)
	for idx := 0; idx < b.N; idx++ {
		core.SliceUint32(data)
	}
}
