package loader

import (
	"errors"

	"github.com/ezrec/volve/translate"
)

var f = translate.From

var (
	ErrImageTooLarge = errors.New(f("image too large for ROM"))
)

// ErrImageSize reports the size of an image that does not fit the ROM.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image of %d bytes exceeds the %d byte ROM", int(err), MAX_IMAGE_SIZE)
}

func (err ErrImageSize) Is(target error) bool {
	return target == ErrImageTooLarge
}
