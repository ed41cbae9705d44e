package epak

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// Open opens the epak archive from r. It will also check
// if the file is actually an epak archive, returning an error
// when it is not.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if num, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToInt64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		reader:    r,
		header:    header,
		dataStart: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for an epak file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader    io.ReaderAt
	header    Header
	dataStart int64
}

// Header returns the metadata the archive was built with.
func (a *Archive) Header() Header {
	return a.header
}

// Index returns the entries of the file index in archive order.
func (a *Archive) Index() []IndexEntry {
	index := make([]IndexEntry, len(a.header.Index))
	copy(index, a.header.Index)
	return index
}

func (a *Archive) entry(name string) (IndexEntry, bool) {
	for _, e := range a.header.Index {
		if e.Name == name {
			return e, true
		}
	}
	return IndexEntry{}, false
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	data := make([]byte, r.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Open returns a Reader for a file in the Archive
func (a *Archive) Open(name string) (*Reader, error) {
	e, ok := a.entry(name)
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.dataStart+e.Offset, e.CompressedSize)
	return &Reader{
		entry:        e,
		decompressor: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry        IndexEntry
	decompressor *lz4.Reader
}

// Size returns the uncompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.decompressor.Read(p)
}
