package memhost

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
)

// Hash is a rolling xxhash64 digest implementing host.Hash.
// Every value is appended as a one-byte kind tag followed by 8 little-endian
// bytes, so AppendInt(1) and AppendFloat(1) produce different digests.
type Hash struct {
	d   *xxhash.Digest
	buf [9]byte
}

var _ host.Hash = (*Hash)(nil)

const (
	kindInt byte = iota + 1
	kindFloat
	kindBool
	kindUint64
)

// NewHash returns an empty rolling hash.
func NewHash() *Hash { return &Hash{d: xxhash.New()} }

func (h *Hash) write(kind byte, bits uint64) {
	h.buf[0] = kind
	binary.LittleEndian.PutUint64(h.buf[1:], bits)
	_, _ = h.d.Write(h.buf[:]) // xxhash.Digest.Write never fails
}

// AppendInt implements host.Hash.
func (h *Hash) AppendInt(v int) { h.write(kindInt, uint64(int64(v))) }

// AppendFloat implements host.Hash. -0 and +0 hash alike; NaNs hash by bits.
func (h *Hash) AppendFloat(v float64) {
	if v == 0 {
		v = 0
	}
	h.write(kindFloat, math.Float64bits(v))
}

// AppendBool implements host.Hash.
func (h *Hash) AppendBool(v bool) {
	var b uint64
	if v {
		b = 1
	}
	h.write(kindBool, b)
}

// AppendUint64 implements host.Hash.
func (h *Hash) AppendUint64(v uint64) { h.write(kindUint64, v) }

// Sum64 implements host.Hash.
func (h *Hash) Sum64() uint64 { return h.d.Sum64() }

// Reset clears the digest.
func (h *Hash) Reset() { h.d.Reset() }

// stringHash digests a string for AppendUint64.
func stringHash(s string) uint64 { return xxhash.Sum64String(s) }
