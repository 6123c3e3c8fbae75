/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package fileutils

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

type CompressedType int8

const (
	Gzfile CompressedType = iota + 1
	Lz4file
)

const sniffLength = 1024

var (
	ErrCantReadHeader        = errors.New("cant read file header")
	ErrUnknownCompressedType = errors.New("unknown compressed type")
)

type compression struct {
	kind   CompressedType
	mime   string
	suffix string
}

//nolint:gochecknoglobals
var (
	compressions = []compression{
		{kind: Gzfile, mime: "application/gzip", suffix: ".gz"},
		{kind: Lz4file, mime: "application/x-lz4", suffix: ".lz4"},
	}
	extendOnce sync.Once
)

// mimetype has no LZ4 detector, frames start with the magic number 0x184D2204 in little endian.
func registerLZ4() {
	magic := []byte{0x04, 0x22, 0x4D, 0x18}
	mimetype.Extend(func(raw []byte, _ uint32) bool {
		return len(raw) >= len(magic) && string(raw[:len(magic)]) == string(magic)
	}, "application/x-lz4", ".lz4")
}

// GetCompressedType sniffs the first bytes of the reader, the file name is not trusted.
func GetCompressedType(reader io.Reader) (CompressedType, error) {
	extendOnce.Do(registerLZ4)

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, ErrCantReadHeader
	}

	detected := mimetype.Detect(head[:n])
	for _, c := range compressions {
		if detected.Is(c.mime) {
			return c.kind, nil
		}
	}

	return 0, ErrUnknownCompressedType
}

// IsCompressed only looks at the name, instrument files are delivered either raw or as a single compressed stream.
func IsCompressed(filename string) bool {
	return TrimCompressedSuffix(filename) != filename
}

// TrimCompressedSuffix returns the name of the expanded file.
func TrimCompressedSuffix(filename string) string {
	for _, c := range compressions {
		if strings.HasSuffix(filename, c.suffix) {
			return strings.TrimSuffix(filename, c.suffix)
		}
	}

	return filename
}
