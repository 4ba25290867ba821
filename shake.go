package sha3

import (
	"github.com/tuvshinzayaArm/sha3/hazmat/sponge"
)

// ShakeHash defines the interface to hash functions that support arbitrary-length output, modeled on the
// standard library's crypto/sha3.ShakeHash and the equivalent shape in other_examples/cloudflare-cloudflared__xof.go.
type ShakeHash interface {
	// Write absorbs more data into the hash's state.
	Write(p []byte) (n int, err error)

	// Read reads more output from the hash. Unlike Write, Read never returns an error, and reading any number
	// of bytes does not exhaust or corrupt the hash's state: the hash remains squeezable indefinitely.
	Read(p []byte) (n int, err error)

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset restores the ShakeHash to its initial state.
	Reset()
}

// shakeState wraps a sponge.State to satisfy ShakeHash for SHAKE128, SHAKE256, cSHAKE128, and cSHAKE256.
type shakeState struct {
	s      sponge.State
	id     sponge.Algorithm
	name   []byte
	custom []byte
	cshake bool
}

func (sh *shakeState) start() {
	var err error
	if sh.cshake {
		err = sh.s.StartsCShake(sh.id, sh.name, sh.custom)
	} else {
		err = sh.s.Starts(sh.id)
	}
	if err != nil {
		panic(err)
	}
}

// Write absorbs p. It panics if called after Read, mirroring the sponge's phase discipline: once squeezing has
// begun, the context no longer accepts input.
func (sh *shakeState) Write(p []byte) (int, error) {
	if err := sh.s.Update(p); err != nil {
		panic(err)
	}
	return len(p), nil
}

// Read squeezes len(p) bytes of output into p. It never returns an error and may be called repeatedly; each call
// continues the squeeze where the previous one left off.
func (sh *shakeState) Read(p []byte) (int, error) {
	if err := sh.s.Finish(p); err != nil {
		panic(err)
	}
	return len(p), nil
}

// Clone returns an independent copy of sh sharing no state with the original.
func (sh *shakeState) Clone() ShakeHash {
	dup := *sh
	dup.s = *sh.s.Clone()
	return &dup
}

// Reset restores sh to its initial, pre-Write state, re-absorbing the cSHAKE name/customization framing if any.
func (sh *shakeState) Reset() {
	sh.start()
}

// NewShake128 returns a new ShakeHash computing the SHAKE128 extendable-output function.
func NewShake128() ShakeHash {
	sh := &shakeState{id: sponge.SHAKE128}
	sh.start()
	return sh
}

// NewShake256 returns a new ShakeHash computing the SHAKE256 extendable-output function.
func NewShake256() ShakeHash {
	sh := &shakeState{id: sponge.SHAKE256}
	sh.start()
	return sh
}

// NewCShake128 returns a new ShakeHash computing cSHAKE128 with the given function-name (N) and customization (S)
// strings. If both are empty, the result behaves exactly like NewShake128.
func NewCShake128(name, custom []byte) ShakeHash {
	sh := &shakeState{id: sponge.CSHAKE128, name: name, custom: custom, cshake: true}
	sh.start()
	return sh
}

// NewCShake256 returns a new ShakeHash computing cSHAKE256 with the given function-name (N) and customization (S)
// strings. If both are empty, the result behaves exactly like NewShake256.
func NewCShake256(name, custom []byte) ShakeHash {
	sh := &shakeState{id: sponge.CSHAKE256, name: name, custom: custom, cshake: true}
	sh.start()
	return sh
}

// SumShake128 absorbs data and appends n bytes of SHAKE128 output to b.
func SumShake128(b, data []byte, n int) []byte {
	return sumShake(sponge.SHAKE128, data, n, b)
}

// SumShake256 absorbs data and appends n bytes of SHAKE256 output to b.
func SumShake256(b, data []byte, n int) []byte {
	return sumShake(sponge.SHAKE256, data, n, b)
}

func sumShake(id sponge.Algorithm, data []byte, n int, b []byte) []byte {
	s := sponge.New(id)
	if err := s.Update(data); err != nil {
		panic(err)
	}
	out := make([]byte, n)
	if err := s.Finish(out); err != nil {
		panic(err)
	}
	return append(b, out...)
}
