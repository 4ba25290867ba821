package sponge

// This file implements the SP 800-185 §2.3 encoding primitives cSHAKE needs: left_encode, encode_string, and
// bytepad. The preamble is built as a plain []byte up front, rather than writing encoded pieces straight into
// the sponge, so StartsCShake can absorb it through the ordinary Update path.

// leftEncode returns the minimum-length big-endian encoding of x, prefixed by a single byte giving that length.
// x = 0 encodes as {0x01, 0x00}.
func leftEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0x01, 0x00}
	}

	var buf [8]byte
	buf[0] = byte(x >> 56)
	buf[1] = byte(x >> 48)
	buf[2] = byte(x >> 40)
	buf[3] = byte(x >> 32)
	buf[4] = byte(x >> 24)
	buf[5] = byte(x >> 16)
	buf[6] = byte(x >> 8)
	buf[7] = byte(x)

	start := 0
	for start < 7 && buf[start] == 0 {
		start++
	}

	n := 8 - start
	out := make([]byte, 0, n+1)
	out = append(out, byte(n))
	out = append(out, buf[start:]...)
	return out
}

// encodeString returns left_encode(8*|x|) || x, the SP 800-185 encoding of a bit string given as bytes.
func encodeString(x []byte) []byte {
	return concat(leftEncode(uint64(len(x))*8), x)
}

// bytepad returns left_encode(w) || z, padded with zero bytes to a multiple of w.
func bytepad(z []byte, w int) []byte {
	prefix := leftEncode(uint64(w))
	total := len(prefix) + len(z)
	pad := (w - total%w) % w

	out := make([]byte, 0, total+pad)
	out = append(out, prefix...)
	out = append(out, z...)
	out = append(out, make([]byte, pad)...)
	return out
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
