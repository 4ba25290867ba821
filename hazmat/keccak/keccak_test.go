package keccak //nolint:testpackage // testing internals

import (
	"crypto/sha3"
	"encoding/hex"
	"testing"
)

func TestF1600ZeroState(t *testing.T) {
	var state [200]byte
	Permute(&state)

	// Known-answer vector for Keccak-f[1600] (24 rounds) over the all-zero state.
	want := "e7dde140798f25f18a47c033f9ccd584eea95aa61e2698d54d49806f304715bd57d05362054e288bd46f8e7f2da497ffc44746a4a0e5fe90762e19d60cda5b8c9c05191bf7a630ad64fc8fd0b75a933035d617233fa95aeb0321710d26e6a6a95f55cfdb167ca58126c84703cd31b8439f56a5111a2ff20161aed9215a63e505f270c98cf2febe641166c47b95703661cb0ed04f555a7cb8c832cf1c8ae83e8c14263aae22790c94e409c5a224f94118c26504e72635f5163ba1307fe944f67549a2ec5c7bfff1ea"
	if got := hex.EncodeToString(state[:]); got != want {
		t.Errorf("f1600(0^1600) = %s, want = %s", got, want)
	}
}

func TestF1600ChangesState(t *testing.T) {
	// The cross-check against standard SHAKE output lives in hazmat/sponge's known-answer vectors. Here we only
	// confirm that Permute changes the state it is applied to: a second application moves f1600(0) on again, and a
	// pseudorandom state seeded from crypto/sha3's SHAKE128 is not left as it was.
	var state [200]byte
	Permute(&state)
	first := state
	Permute(&state)

	if state == first {
		t.Fatalf("Permute applied twice produced the same state as once; permutation is not behaving as expected")
	}

	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-f1600-fuzz-seed"))
	var seeded [200]byte
	_, _ = drbg.Read(seeded[:])
	before := seeded
	Permute(&seeded)
	if seeded == before {
		t.Fatalf("Permute left a pseudorandom state unchanged")
	}
}

func FuzzF1600Deterministic(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-f1600-fuzz"))
	for i := 0; i < 10; i++ {
		var state [200]byte
		_, _ = drbg.Read(state[:])
		f.Add(state[:])
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 200 {
			t.Skip()
		}

		var a, b [200]byte
		copy(a[:], data)
		copy(b[:], data)

		Permute(&a)
		Permute(&b)

		if a != b {
			t.Errorf("Permute(%x) is non-deterministic: %x != %x", data, a, b)
		}
	})
}

func BenchmarkPermute(b *testing.B) {
	b.Logf("HasAcceleration = %v", HasAcceleration())

	var s0 [200]byte
	b.ReportAllocs()
	b.SetBytes(int64(len(s0)))
	for b.Loop() {
		Permute(&s0)
	}
}
