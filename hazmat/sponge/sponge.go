// Package sponge implements the FIPS 202 sponge construction and the SP 800-185 cSHAKE extension over the
// Keccak-f[1600] permutation (hazmat/keccak). It is the hazmat core beneath the root sha3 package's hash.Hash and
// XOF constructors.
package sponge

import (
	"errors"

	"github.com/tuvshinzayaArm/sha3/hazmat/keccak"
	"github.com/tuvshinzayaArm/sha3/internal/mem"
)

// ErrBadInputData is returned by Starts, StartsCShake, and Finish when the caller supplies a value the FIPS 202 /
// SP 800-185 contract rejects: an unrecognized Algorithm, a non-cSHAKE id passed to StartsCShake, or an output
// length that does not match a fixed-digest family's mandated size. mbedtls represents the same condition as
// MBEDTLS_ERR_SHA3_BAD_INPUT_DATA (-0x0076); no numeric compatibility is implied or required here.
var ErrBadInputData = errors.New("sponge: bad input data")

// phase tracks the context's lifecycle as a tagged variant rather than a sentinel field, so that misuse (Update
// before Starts, Finish after a fixed digest has already been produced) is caught by an explicit state check
// instead of inferred from a zeroed rate.
type phase int

const (
	phaseUninit phase = iota
	phaseAbsorbing
	phaseSqueezing // XOF only: Finish has run at least once: pad/permute already happened
	phaseFinalized // fixed-digest families land here after their single Finish call
)

// State is a streaming FIPS 202 / SP 800-185 hash or XOF context: the sole mutable entity in this core. The zero
// value is a valid, uninitialized context equivalent to a freshly Init'd one.
type State struct {
	state  [200]byte // 25 lanes, 64 bits each, little-endian per FIPS 202 §B.1
	rate   int        // rateBytes: absorption/squeeze rate, a positive multiple of 8, <= 168
	digest int        // mandated digest length in bytes; 0 for XOFs
	suffix byte       // domain-separation byte XORed in immediately before the 0x80 pad
	index  int        // current offset within the rate window; 0 <= index < rate
	id     Algorithm
	phase  phase
}

// New returns a context already started for id. It is a convenience equivalent to declaring a zero State and
// calling Starts; it panics on an unrecognized id, since a construction-time family choice is a programmer error,
// not malformed input data, whereas Starts itself returns ErrBadInputData for the same id.
func New(id Algorithm) *State {
	s := new(State)
	if err := s.Starts(id); err != nil {
		panic(err)
	}
	return s
}

// Init zeros the context, returning it to the uninitialized-parameters state. It cannot fail.
func (s *State) Init() {
	*s = State{}
}

// Zero zeroizes the context's state and parameters, releasing any sensitivity the absorbed input or digest
// material carried. It is the idiomatic Go stand-in for the source's free: there is no heap allocation to
// release, only memory hygiene to perform, and Zero is safe to call on a nil *State as a no-op.
func (s *State) Zero() {
	if s == nil {
		return
	}
	*s = State{}
}

// Clone returns an independent deep copy of s. Because State holds no pointers or slices, a plain value copy
// already shares no mutable storage with the original; Clone exists so callers have the documented fork
// operation without relying on that implementation detail.
func (s *State) Clone() *State {
	dup := *s
	return &dup
}

// Starts resets the context and starts it for the given family. id must be one of the eight FIPS 202 families
// (SHA3-224/256/384/512, SHAKE128/256, CSHAKE128/256); cSHAKE ids are accepted here and behave exactly like the
// corresponding SHAKE rate, with no cSHAKE framing absorbed (see StartsCShake for that). Starts applied twice with
// no intervening Update is idempotent: both calls leave the context in the same state.
func (s *State) Starts(id Algorithm) error {
	p, ok := families[id]
	if !ok {
		return ErrBadInputData
	}

	*s = State{
		rate:   p.rate,
		digest: p.digestLen,
		suffix: p.suffix,
		id:     id,
		phase:  phaseAbsorbing,
	}
	return nil
}

// StartsCShake resets the context and starts it as cSHAKE128 or cSHAKE256, then absorbs the SP 800-185 §3 framed
// preamble bytepad(encode_string(name) || encode_string(custom), rate) before any caller data. If both name and
// custom are empty, cSHAKE degenerates to plain SHAKE: no preamble is absorbed and the suffix byte stays 0x1F.
// Otherwise the suffix switches to 0x04. id must be CSHAKE128 or CSHAKE256.
func (s *State) StartsCShake(id Algorithm, name, custom []byte) error {
	if !isCShake(id) {
		return ErrBadInputData
	}
	if err := s.Starts(id); err != nil {
		return err
	}

	if len(name) == 0 && len(custom) == 0 {
		return nil
	}

	s.suffix = suffixCSHAKE
	preamble := bytepad(concat(encodeString(name), encodeString(custom)), s.rate)
	return s.Update(preamble)
}

// Update absorbs len(in) bytes of input. A zero-length call is a no-op. Streaming Update(a) then Update(b) absorbs
// identically to a single Update(a||b), byte for byte.
func (s *State) Update(in []byte) error {
	if s.phase != phaseAbsorbing {
		return ErrBadInputData
	}

	for len(in) > 0 {
		w := min(s.rate-s.index, len(in))
		mem.XORInPlace(s.state[s.index:s.index+w], in[:w])
		s.index += w
		in = in[w:]

		if s.index == s.rate {
			keccak.Permute(&s.state)
			s.index = 0
		}
	}
	return nil
}

// Finish pads and permutes the state (on the call that ends absorption) and squeezes len(out) bytes into out.
//
// For a fixed-digest family, Finish must be called exactly once and len(out) must equal the family's mandated
// digest length, or ErrBadInputData is returned; afterward the context is finalized and any further Update or
// Finish fails until a new Starts. For a SHAKE or cSHAKE family, Finish may be called any number of times, each
// call continuing the squeeze from where the previous one left off — this is the generalization that lets the
// XOF families back an idiomatic, unbounded io.Reader at the public API layer, in place of the single fixed-olen
// call the context model otherwise mandates; any non-negative len(out), including zero, is accepted.
func (s *State) Finish(out []byte) error {
	switch s.phase {
	case phaseUninit, phaseFinalized:
		return ErrBadInputData
	case phaseAbsorbing:
		if s.digest != 0 && len(out) != s.digest {
			return ErrBadInputData
		}

		s.state[s.index] ^= s.suffix
		s.state[s.rate-1] ^= 0x80
		keccak.Permute(&s.state)
		s.index = 0
		if s.digest != 0 {
			s.phase = phaseFinalized
		} else {
			s.phase = phaseSqueezing
		}
	case phaseSqueezing:
		// Only reachable for XOF families; digest-length validation never applies here.
	}

	s.squeeze(out)
	return nil
}

// squeeze writes len(out) bytes from the rate window, permuting whenever the window runs dry, and leaves index
// pointing at the next unread byte for a subsequent call to continue from.
func (s *State) squeeze(out []byte) {
	for len(out) > 0 {
		if s.index == s.rate {
			keccak.Permute(&s.state)
			s.index = 0
		}
		n := copy(out, s.state[s.index:s.rate])
		s.index += n
		out = out[n:]
	}
}

// Algorithm returns the family the context was last started for, or None if it has never been started.
func (s *State) Algorithm() Algorithm {
	return s.id
}

// RateBytes returns the context's absorption/squeeze rate in bytes, or 0 if it has never been started.
func (s *State) RateBytes() int {
	return s.rate
}
