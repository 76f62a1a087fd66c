// Package pager is the half-written on-disk prototype the core's Tree
// never depends on: an append-only, checksummed log of Tree[int64, []byte]
// writes that can be replayed into a fresh Tree. The write offset lives
// only in the Snapshot value, so records left in a file by an earlier
// process are not found again on reopening. It exists
// outside the core's scope (persistence is explicitly not something the
// in-memory index itself provides) and is deliberately minimal: there is
// no compaction, no page reclamation, and no concurrent writer support.
package pager

import (
	"encoding/binary"
	"errors"
)

// recordHeaderSize is the fixed prefix of every record: an 8-byte
// big-endian key followed by a 4-byte big-endian value length.
const recordHeaderSize = 8 + 4

// Snapshot is an append-only sequence of (key, value) records backed by a
// Storage implementation. Appends always go at the current write offset;
// there is no update-in-place and no deletion, matching the core's own
// insert-or-replace semantics: a key's latest Append wins on Replay.
type Snapshot struct {
	storage Storage
	size    int64
}

// OpenFile opens or creates a memory-mapped snapshot file, growing it to
// at least initialSize bytes. The returned Snapshot starts empty: Replay
// does not see records already in the file, and Append overwrites them.
func OpenFile(path string, initialSize int64) (*Snapshot, error) {
	m, err := OpenMmapFile(path, initialSize)
	if err != nil {
		return nil, err
	}
	return &Snapshot{storage: m}, nil
}

// OpenMemory opens an in-memory snapshot, useful for tests that want the
// Snapshot contract without touching a filesystem.
func OpenMemory(initialSize int64) (*Snapshot, error) {
	m, err := NewMemoryStorage(initialSize)
	if err != nil {
		return nil, err
	}
	return &Snapshot{storage: m}, nil
}

// Append serializes one record at the current write offset, growing the
// backing storage geometrically if it would not fit.
func (s *Snapshot) Append(key int64, value []byte) error {
	recLen := int64(recordHeaderSize + len(value) + ChecksumSize)
	need := s.size + recLen
	if need > s.storage.Size() {
		newSize := s.storage.Size() * 2
		if newSize < need {
			newSize = need
		}
		if err := s.storage.Grow(newSize); err != nil {
			return err
		}
	}
	buf := s.storage.Slice(int(s.size), int(recLen))
	if buf == nil {
		return errors.New("pager: append past storage bounds")
	}
	binary.BigEndian.PutUint64(buf[0:8], uint64(key))
	binary.BigEndian.PutUint32(buf[8:12], uint32(len(value)))
	copy(buf[recordHeaderSize:recordHeaderSize+len(value)], value)
	WriteChecksum(buf)
	s.size += recLen
	return nil
}

// Replay calls fn once per record in append order. A caller rebuilding a
// Tree should call t.Put(key, value) from fn: since later Appends
// overwrite earlier ones logically (not physically), replaying in order
// reproduces the same last-write-wins semantics Put itself guarantees.
func (s *Snapshot) Replay(fn func(key int64, value []byte) error) error {
	var offset int64
	for offset < s.size {
		header := s.storage.Slice(int(offset), recordHeaderSize)
		if header == nil {
			return errors.New("pager: truncated record header")
		}
		key := int64(binary.BigEndian.Uint64(header[0:8]))
		vlen := int(binary.BigEndian.Uint32(header[8:12]))
		recLen := recordHeaderSize + vlen + ChecksumSize
		rec := s.storage.Slice(int(offset), recLen)
		if rec == nil {
			return errors.New("pager: truncated record body")
		}
		if cerr := VerifyChecksum(offset, rec); cerr != nil {
			return cerr
		}
		value := make([]byte, vlen)
		copy(value, rec[recordHeaderSize:recordHeaderSize+vlen])
		if err := fn(key, value); err != nil {
			return err
		}
		offset += int64(recLen)
	}
	return nil
}

// Sync flushes pending writes to the backing storage.
func (s *Snapshot) Sync() error { return s.storage.Sync() }

// Close releases the backing storage. The Snapshot must not be used
// afterward.
func (s *Snapshot) Close() error { return s.storage.Close() }
