package blockstore

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/fadel-lamarca/extheap/pkg/fs"
)

// filePerm is the mode new block store files are created with.
const filePerm = 0o644

// BlockIO is the interface the external heap depends on. [*Store] is the
// production implementation; tests substitute [*Instrumented] to count
// block I/O (spec property: O(log(N/B)) reads/writes per operation) or
// inject failures on a chosen block.
type BlockIO interface {
	BlockSize() int
	Blocks() int
	ReadBlock(i int) ([]byte, error)
	WriteBlock(i int, buf []byte) error
	Clear() error
	Close() error
}

var _ BlockIO = (*Store)(nil)

// Store is a random-access array of fixed-size blocks backed by a single
// flat file. Offset of block i is i * blockSize. Missing blocks (i >= the
// current block count) read as absent; writing past the end extends the
// file, and the gap is arbitrary/zero-filled per the store's contract.
//
// Store is not safe for concurrent use; the external heap that owns it is
// single-threaded by design (see the heap package's concurrency notes).
type Store struct {
	fsys      fs.FS
	path      string
	file      fs.File
	blockSize int
	blocks    int // K_store: number of blocks currently addressable
	closed    bool
}

// Open opens (or creates) a block store at path with the given blockSize in
// bytes. If clear is true, any existing file is truncated and the store
// starts empty (K_store = 0). Otherwise the file is opened as-is and
// K_store is derived from the file size.
//
// Fails with [ErrIoOpen] if the file cannot be created or opened.
func Open(fsys fs.FS, path string, blockSize int, clear bool) (*Store, error) {
	if blockSize <= 0 {
		panic("blockstore: blockSize must be > 0")
	}

	flag := os.O_RDWR | os.O_CREATE
	if clear {
		flag |= os.O_TRUNC
	}

	f, err := fsys.OpenFile(path, flag, filePerm)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoOpen, path, err) //nolint:errorlint // sentinel carried via %w
	}

	blocks := 0

	if !clear {
		info, statErr := f.Stat()
		if statErr != nil {
			_ = f.Close()

			return nil, fmt.Errorf("%w: stat %s: %v", ErrIoOpen, path, statErr) //nolint:errorlint
		}

		blocks = int(info.Size() / int64(blockSize))
	}

	return &Store{
		fsys:      fsys,
		path:      path,
		file:      f,
		blockSize: blockSize,
		blocks:    blocks,
	}, nil
}

// BlockSize returns the fixed size in bytes of every block.
func (s *Store) BlockSize() int {
	return s.blockSize
}

// Blocks returns K_store, the number of blocks currently addressable
// (blocks that a read at that index would not treat as absent).
func (s *Store) Blocks() int {
	return s.blocks
}

// ReadBlock returns an owned copy of block i, exactly BlockSize() bytes, or
// (nil, nil) if i is beyond the current block count. Reads are never
// partial: either the full block comes back or an error does.
func (s *Store) ReadBlock(i int) ([]byte, error) {
	if i < 0 {
		panic("blockstore: negative block index")
	}

	if s.closed {
		return nil, ErrClosed
	}

	if i >= s.blocks {
		return nil, nil
	}

	buf := make([]byte, s.blockSize)

	off := int64(i) * int64(s.blockSize)

	_, err := s.file.ReadAt(buf, off)
	if err != nil {
		return nil, fmt.Errorf("%w: block %d: %v", ErrIoRead, i, err) //nolint:errorlint
	}

	return buf, nil
}

// WriteBlock writes buf as block i, zero-padded to BlockSize() if shorter.
// If i is beyond the current block count, the gap is extended with
// zero-filled blocks (a sparse file on filesystems that support holes).
// After a successful call, Blocks() >= i+1.
//
// Returns [ErrBlockTooLarge] if len(buf) > BlockSize().
func (s *Store) WriteBlock(i int, buf []byte) error {
	if i < 0 {
		panic("blockstore: negative block index")
	}

	if s.closed {
		return ErrClosed
	}

	if len(buf) > s.blockSize {
		return fmt.Errorf("%w: block %d has %d bytes, block size is %d", ErrBlockTooLarge, i, len(buf), s.blockSize)
	}

	padded := buf

	if len(buf) < s.blockSize {
		padded = make([]byte, s.blockSize)
		copy(padded, buf)
	}

	off := int64(i) * int64(s.blockSize)

	_, err := s.file.WriteAt(padded, off)
	if err != nil {
		return fmt.Errorf("%w: block %d: %v", ErrIoWrite, i, err) //nolint:errorlint
	}

	if i+1 > s.blocks {
		s.blocks = i + 1
	}

	return nil
}

// Clear truncates the store to zero length and resets Blocks() to 0.
//
// Implemented as an atomic whole-file replace (via [atomic.WriteFile])
// rather than an in-place ftruncate: the replace is all-or-nothing even if
// the process is interrupted mid-call, at the cost of closing and
// reopening the underlying handle. Random-access ReadBlock/WriteBlock stay
// in-place; only this whole-file reset goes through the atomic path.
func (s *Store) Clear() error {
	if s.closed {
		return ErrClosed
	}

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("%w: close before clear %s: %v", ErrIoWrite, s.path, err) //nolint:errorlint
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(nil)); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrIoWrite, s.path, err) //nolint:errorlint
	}

	f, err := s.fsys.OpenFile(s.path, os.O_RDWR, filePerm)
	if err != nil {
		return fmt.Errorf("%w: reopen %s after clear: %v", ErrIoOpen, s.path, err) //nolint:errorlint
	}

	s.file = f
	s.blocks = 0

	return nil
}

// Close releases the underlying file handle. Close is idempotent.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	return s.file.Close()
}
