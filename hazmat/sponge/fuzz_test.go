package sponge

import (
	"bytes"
	"testing"

	"github.com/tuvshinzayaArm/sha3/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// ids enumerates the families a fuzzed sequence may select between.
var ids = []Algorithm{SHA3_224, SHA3_256, SHA3_384, SHA3_512, SHAKE128, SHAKE256, CSHAKE128, CSHAKE256}

// FuzzSpongeDivergence generates a random sequence of Update/Finish/Clone operations and performs it on two
// independently constructed contexts for the same family, checking that every Finish call produces identical
// output on both.
func FuzzSpongeDivergence(f *testing.F) {
	drbg := testdata.New("sponge divergence")
	for i := 0; i < 10; i++ {
		f.Add(drbg.Data(1024))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		idRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		id := ids[int(idRaw)%len(ids)]

		s1 := New(id)
		s2 := New(id)

		opCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		digestLen := families[id].digestLen

		for i := 0; i < int(opCount%50); i++ {
			opTypeRaw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}

			const opTypeCount = 3 // Update, Finish, Clone-and-diverge
			switch opTypeRaw % opTypeCount {
			case 0: // Update
				input, err := tp.GetBytes()
				if err != nil {
					t.Skip(err)
				}
				_ = s1.Update(input)
				_ = s2.Update(input)
			case 1: // Finish
				n := digestLen
				if n == 0 {
					raw, err := tp.GetUint16()
					if err != nil {
						t.Skip(err)
					}
					n = int(raw % 256)
				}
				out1 := make([]byte, n)
				out2 := make([]byte, n)
				err1 := s1.Finish(out1)
				err2 := s2.Finish(out2)
				if (err1 == nil) != (err2 == nil) {
					t.Fatalf("divergent Finish errors: %v != %v", err1, err2)
				}
				if err1 == nil && !bytes.Equal(out1, out2) {
					t.Fatalf("divergent Finish outputs: %x != %x", out1, out2)
				}
				if err1 != nil {
					// Fixed-digest family already finalized: both branches are now terminal, reset and continue.
					s1 = New(id)
					s2 = New(id)
				}
			case 2: // Clone-and-diverge: the clone's subsequent operations must not affect the original.
				clone := s1.Clone()
				input, err := tp.GetBytes()
				if err != nil {
					t.Skip(err)
				}
				_ = clone.Update(input)
				// s1 itself is left untouched; s2 still must track s1 exactly.
			}
		}
	})
}

// FuzzSpongeStreamingEquivalence checks that absorbing a random byte slice in one shot produces the same digest
// as absorbing it in randomized chunks.
func FuzzSpongeStreamingEquivalence(f *testing.F) {
	drbg := testdata.New("sponge streaming equivalence fuzz")
	for i := 0; i < 10; i++ {
		f.Add(drbg.Data(2048))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		msg, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		oneShot := New(SHAKE256)
		_ = oneShot.Update(msg)
		want := make([]byte, 32)
		_ = oneShot.Finish(want)

		chunked := New(SHAKE256)
		for len(msg) > 0 {
			n, err := tp.GetUint16()
			if err != nil {
				n = uint16(len(msg))
			}
			take := int(n)%len(msg) + 1
			_ = chunked.Update(msg[:take])
			msg = msg[take:]
		}
		got := make([]byte, 32)
		_ = chunked.Finish(got)

		if !bytes.Equal(got, want) {
			t.Fatalf("chunked absorption diverged: %x != %x", got, want)
		}
	})
}
