// Package epak is an api for an lz4 backed resource archive format.
// Its purpose is to be well suited for streaming resources out of it.
// It's designed to be memory mapped, so (unlike tar) it knows where all
// the files are located before they're read. The archive itself is not
// compressed in any form, rather every file is individually compressed,
// so it can be read from its place and decompressed on the fly. This
// somewhat compromises space efficiency, but getting resources from
// disk to a usable state fast matters more here. An Archive can be read
// from concurrently.
//
// The layout is a 4 byte magic, a 16 byte varint with the encoded
// header length, the gob encoded header, then the data section. Index
// offsets are relative to the start of the data section, which keeps
// them independent of the header's own encoded size.
package epak

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not an epak archive")
	ErrNotFound   = errors.New("no file with that name in the archive")
)

// Sizes relevant to the header of the file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 16
)

var magic = [MagicLength]byte{'E', 'P', 'K', '\x00'}

// IndexEntry is info for one file in the file index. Offset is
// relative to the start of the data section.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the file header for epak files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	numBytes := make([]byte, HeaderSizeNumberLength)
	binary.PutVarint(numBytes, num)
	return numBytes
}

func binaryToInt64(bts []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(bts))
	if err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	return gob.NewDecoder(bytes.NewReader(bts)).Decode(obj)
}
