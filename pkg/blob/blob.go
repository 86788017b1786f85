// Package blob reads whole files into memory as exact-length byte buffers.
package blob

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
)

// DefaultLimit caps the size of a file Read will load.
const DefaultLimit int64 = 256 << 20

// Read errors.
var (
	ErrOpenFailed       = errors.New("failed to open file")
	ErrSizeQueryFailed  = errors.New("failed to get file size")
	ErrAllocationFailed = errors.New("failed to allocate buffer")
	ErrShortRead        = errors.New("failed to read all data")
)

// Read loads the whole file at path using DefaultLimit.
func Read(path string) ([]byte, error) {
	return ReadWithLimit(path, DefaultLimit)
}

// ReadWithLimit loads the whole file at path. The size comes from fstat on the
// open descriptor, the buffer is allocated to exactly that size and filled in
// one read. A limit <= 0 means no limit beyond the platform int range.
func ReadWithLimit(path string, limit int64) (data []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := lockExclusive(f); err != nil {
		return nil, fmt.Errorf("%w: %s is in use: %w", ErrOpenFailed, path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(func() error { return unlock(f) }))

	size, err := fileSize(f)
	if err != nil {
		return nil, err
	}

	buf, err := allocate(size, limit)
	if err != nil {
		return nil, err
	}

	if err := readFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// fileSize asks the OS for the size of an open regular file.
func fileSize(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSizeQueryFailed, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s is not a regular file", ErrSizeQueryFailed, info.Name())
	}
	return info.Size(), nil
}

func allocate(size, limit int64) ([]byte, error) {
	if size < 0 || size > math.MaxInt {
		return nil, fmt.Errorf("%w: size %d out of range", ErrAllocationFailed, size)
	}
	if limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrAllocationFailed, size, limit)
	}
	return make([]byte, size), nil
}

// readFull fills buf from r in a single logical read.
func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)) {
		return fmt.Errorf("%w (read %d of %d)", ErrShortRead, n, len(buf))
	}
	if err != nil {
		return fmt.Errorf("%w (read %d of %d): %w", ErrShortRead, n, len(buf), err)
	}
	return nil
}
