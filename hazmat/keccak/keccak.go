// Package keccak implements the Keccak-f[1600] permutation defined in FIPS 202 appendix B.
package keccak

import "github.com/klauspost/cpuid/v2"

// Permute is the active Keccak-f[1600] implementation. It is the alternate-backend hook: a build that links a
// hardware-accelerated permutation may rebind it at init time, provided the replacement is bit-exact against every
// FIPS 202 and SP 800-185 test vector and preserves the pure-function contract (output depends only on the input
// state; no data-dependent branch or memory access). The default is the pure-Go round function below.
var Permute = f1600

// HasAcceleration reports whether the host CPU exposes native Keccak round instructions (ARMv8.2-SHA3, or an
// equivalent AVX-512/SHA3 extension), which a hardware-accelerated Permute backend could target. This package does
// not ship such a backend; the flag is purely diagnostic, surfaced through logging and the sha3sum CLI's -v flag.
func HasAcceleration() bool {
	return cpuid.CPU.Has(cpuid.SHA3)
}

// rc holds the 24 round constants for ι, derived from the LFSR over GF(2) per FIPS 202 §3.2.5.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the per-lane rotation offsets ρ[x,y], indexed as rho[5*y+x], per FIPS 202 §3.2.2 / Table 2.
var rho = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func rotl64(x uint64, n uint) uint64 {
	return x<<n | x>>(64-n)
}

// f1600 applies 24 rounds of θ, ρ, π, χ, ι to the 25-lane state, addressed as a 200-byte little-endian view per
// FIPS 202 §B.1. It is a pure function of the state: control flow and memory accesses never depend on the state's
// contents, only on its fixed size.
func f1600(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = le64(state[8*i:])
	}

	var b [25]uint64
	var c, d [5]uint64

	for round := range rc {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[5*y+x] ^= d[x]
			}
		}

		// ρ and π: B[y, (2x+3y) mod 5] = rotl(A[x,y], ρ[x,y])
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[5*((2*x+3*y)%5)+y] = rotl64(a[5*y+x], rho[5*y+x])
			}
		}

		// χ
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[5*y+x] = b[5*y+x] ^ (^b[5*y+(x+1)%5] & b[5*y+(x+2)%5])
			}
		}

		// ι
		a[0] ^= rc[round]
	}

	for i := range a {
		putLE64(state[8*i:], a[i])
	}
}

func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLE64(b []byte, x uint64) {
	_ = b[7]
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
	b[4] = byte(x >> 32)
	b[5] = byte(x >> 40)
	b[6] = byte(x >> 48)
	b[7] = byte(x >> 56)
}
