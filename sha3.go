// Package sha3 implements the FIPS 202 SHA-3 fixed-output hash functions and SHAKE extendable-output functions,
// plus the SP 800-185 cSHAKE extension, over the hazmat/sponge state machine.
package sha3

import (
	"github.com/tuvshinzayaArm/sha3/hazmat/sponge"
)

// Size constants for the fixed-digest families, in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// digest wraps a sponge.State to satisfy hash.Hash for one of the four fixed-digest families.
type digest struct {
	s   sponge.State
	id  sponge.Algorithm
	len int
}

func newDigest(id sponge.Algorithm, size int) *digest {
	d := &digest{id: id, len: size}
	if err := d.s.Starts(id); err != nil {
		panic(err)
	}
	return d
}

// New224 returns a new hash.Hash computing the SHA3-224 checksum.
func New224() *digest { return newDigest(sponge.SHA3_224, Size224) }

// New256 returns a new hash.Hash computing the SHA3-256 checksum.
func New256() *digest { return newDigest(sponge.SHA3_256, Size256) }

// New384 returns a new hash.Hash computing the SHA3-384 checksum.
func New384() *digest { return newDigest(sponge.SHA3_384, Size384) }

// New512 returns a new hash.Hash computing the SHA3-512 checksum.
func New512() *digest { return newDigest(sponge.SHA3_512, Size512) }

// Write absorbs p into the running hash. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	if err := d.s.Update(p); err != nil {
		panic(err)
	}
	return len(p), nil
}

// Size returns the number of bytes Sum will append.
func (d *digest) Size() int { return d.len }

// BlockSize returns the family's underlying rate, the natural write granularity for streaming callers.
func (d *digest) BlockSize() int { return d.s.RateBytes() }

// Sum appends the current hash to b and returns the resulting slice, without modifying the underlying state: it
// operates on a clone, so further Write calls on d remain valid.
func (d *digest) Sum(b []byte) []byte {
	clone := d.s.Clone()
	out := make([]byte, d.len)
	if err := clone.Finish(out); err != nil {
		panic(err)
	}
	return append(b, out...)
}

// Reset restores d to its initial, pre-Write state.
func (d *digest) Reset() {
	if err := d.s.Starts(d.id); err != nil {
		panic(err)
	}
}

// Sum224 returns the SHA3-224 checksum of data.
func Sum224(data []byte) (out [Size224]byte) {
	sumFixed(sponge.SHA3_224, data, out[:])
	return out
}

// Sum256 returns the SHA3-256 checksum of data.
func Sum256(data []byte) (out [Size256]byte) {
	sumFixed(sponge.SHA3_256, data, out[:])
	return out
}

// Sum384 returns the SHA3-384 checksum of data.
func Sum384(data []byte) (out [Size384]byte) {
	sumFixed(sponge.SHA3_384, data, out[:])
	return out
}

// Sum512 returns the SHA3-512 checksum of data.
func Sum512(data []byte) (out [Size512]byte) {
	sumFixed(sponge.SHA3_512, data, out[:])
	return out
}

func sumFixed(id sponge.Algorithm, data, out []byte) {
	s := sponge.New(id)
	if err := s.Update(data); err != nil {
		panic(err)
	}
	if err := s.Finish(out); err != nil {
		panic(err)
	}
}
