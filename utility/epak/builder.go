package epak

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in
// the header, it will be overwritten anyway.
func NewBuilder(header Header) (*Builder, error) {
	temp, err := ioutil.TempDir("", "epakBuilder")
	if err != nil {
		return nil, err
	}
	header.Index = nil
	builder := &Builder{
		tempDir: temp,
		header:  header,
	}
	runtime.SetFinalizer(builder, func(builder *Builder) {
		os.RemoveAll(builder.tempDir)
	})
	return builder, nil
}

type tempFile struct {

	// Name is the actual name of the file
	Name string

	// TempName is the temporary name given by the Builder
	TempName string

	// Size of the uncompressed content
	Size int64

	Compressed int64
}

// Builder is the high level builder for the archive format.
// Archives are versioned and cannot be appended to, this Builder
// is the way to create one. Whenever Add is called the Builder
// compresses the content into its temporary dir, finally bundling
// everything together when WriteTo is called.
type Builder struct {
	tempDir string
	header  Header
	tempSeq uint64

	mutex sync.Mutex
	files []tempFile
}

// Add compresses the contents of r into the builder under the given
// name. Will block until lz4 finishes compression. Is safe to use
// concurrently in different goroutines.
func (b *Builder) Add(name string, r io.Reader) error {
	tempName := strconv.FormatUint(atomic.AddUint64(&b.tempSeq, 1), 10)

	f, err := os.Create(filepath.Join(b.tempDir, tempName))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := lz4.NewWriter(f)
	written, err := io.Copy(writer, r)
	if err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, tempFile{
		Name:       name,
		TempName:   tempName,
		Size:       written,
		Compressed: info.Size(),
	})
	return nil
}

// WriteTo bundles and writes all of the files added to the Builder
// into an epak archive that is ready to use. The Builder is empty
// again once it returns.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	header.Index = nil

	var offset int64
	for _, v := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           v.Name,
			Offset:         offset,
			Size:           v.Size,
			CompressedSize: v.Compressed,
		})
		offset += v.Compressed
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}

	var total int64
	n, err := w.Write(magic[:])
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(int64ToBinary(int64(len(rawHeader))))
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(rawHeader)
	total += int64(n)
	if err != nil {
		return total, err
	}

	for _, v := range b.files {
		f, err := os.Open(filepath.Join(b.tempDir, v.TempName))
		if err != nil {
			return total, err
		}
		copied, err := io.Copy(w, f)
		f.Close()
		total += copied
		if err != nil {
			return total, err
		}
	}

	b.files = b.files[:0]
	return total, nil
}
