// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package loader places program images into the ROM range of memory.
package loader

import (
	"io"
	"io/fs"

	"github.com/ezrec/volve/memory"
)

// MAX_IMAGE_SIZE is the largest image that fits in ROM.
const MAX_IMAGE_SIZE = memory.ROM_SIZE

// Upload writes the image into consecutive locations starting at
// memory.ROM_LOW. Nothing is written if the image does not fit.
func Upload(mem *memory.Memory, image []byte) (err error) {
	if len(image) > MAX_IMAGE_SIZE {
		err = ErrImageSize(len(image))
		return
	}

	copy(mem.Data[memory.ROM_LOW:], image)

	return
}

// Read reads an image. At most one byte more than MAX_IMAGE_SIZE is
// consumed from the reader, so the size reported for an oversize image
// is a lower bound.
func Read(r io.Reader) (image []byte, err error) {
	image, err = io.ReadAll(io.LimitReader(r, int64(MAX_IMAGE_SIZE)+1))
	if err != nil {
		image = nil
		return
	}

	if len(image) > MAX_IMAGE_SIZE {
		err = ErrImageSize(len(image))
		image = nil
		return
	}

	return
}

// ReadFile reads an image from a file system.
func ReadFile(fsys fs.FS, name string) (image []byte, err error) {
	file, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return Read(file)
}

// Load reads an image and uploads it, returning the image size.
func Load(mem *memory.Memory, r io.Reader) (size int, err error) {
	image, err := Read(r)
	if err != nil {
		return
	}

	err = Upload(mem, image)
	if err != nil {
		return
	}

	size = len(image)
	return
}
