package base32

import (
	"errors"
	"fmt"
)

const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const invalid = 0xFF

var (
	// ErrInvalidLength reports an encoded length that no byte count can
	// produce (1, 3, or 6 characters modulo 8).
	ErrInvalidLength = errors.New("base32: invalid encoded length")

	// ErrInvalidCharacter reports a symbol outside the Crockford alphabet.
	ErrInvalidCharacter = errors.New("base32: invalid character")
)

var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		dec[c] = byte(i)
		dec[c|0x20] = byte(i)
	}
	dec['I'], dec['i'] = 1, 1
	dec['L'], dec['l'] = 1, 1
	dec['O'], dec['o'] = 0, 0
}

// partialChars maps a trailing byte count (1-4) to the number of output
// characters it needs: 8, 16, 24, 32 bits round up to 2, 4, 5, 7 groups.
var partialChars = [5]int{0, 2, 4, 5, 7}

// partialBytes is the inverse: trailing character count to byte count.
// Zero marks a count no input can produce.
var partialBytes = [8]int{0, 0, 1, 0, 2, 3, 0, 4}

// Encoding is a Crockford Base32 codec. The zero value encodes without
// padding; use CrockfordPadding for '='-padded 8-character groups.
type Encoding struct {
	pad bool
}

// Crockford encodes without padding.
var Crockford = &Encoding{}

// CrockfordPadding pads the final group to 8 characters with '='.
var CrockfordPadding = &Encoding{pad: true}

// EncodedLen returns the encoded length of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.pad {
		return (n + 4) / 5 * 8
	}
	return n/5*8 + partialChars[n%5]
}

// EncodeToString encodes src.
func (e *Encoding) EncodeToString(src []byte) string {
	out := make([]byte, 0, e.EncodedLen(len(src)))
	for len(src) >= 5 {
		out = appendChunk(out, src[0], src[1], src[2], src[3], src[4], 8)
		src = src[5:]
	}
	if len(src) > 0 {
		var b [5]byte
		copy(b[:], src)
		out = appendChunk(out, b[0], b[1], b[2], b[3], b[4], partialChars[len(src)])
		if e.pad {
			for len(out)%8 != 0 {
				out = append(out, '=')
			}
		}
	}
	return string(out)
}

// appendChunk emits the first n characters of one 40-bit group.
func appendChunk(out []byte, b0, b1, b2, b3, b4 byte, n int) []byte {
	var c [8]byte
	c[0] = alphabet[b0>>3]
	c[1] = alphabet[(b0&0x07)<<2|b1>>6]
	c[2] = alphabet[b1>>1&0x1F]
	c[3] = alphabet[(b1&0x01)<<4|b2>>4]
	c[4] = alphabet[(b2&0x0F)<<1|b3>>7]
	c[5] = alphabet[b3>>2&0x1F]
	c[6] = alphabet[(b3&0x03)<<3|b4>>5]
	c[7] = alphabet[b4&0x1F]
	return append(out, c[:n]...)
}

// DecodeString decodes s, ignoring trailing '=' padding.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	rem := len(s) % 8
	if partialBytes[rem] == 0 && rem != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(s))
	}

	out := make([]byte, 0, len(s)/8*5+partialBytes[rem])
	for i := 0; i < len(s); i += 8 {
		group := s[i:]
		n := 8
		if len(group) < 8 {
			n = len(group)
		}
		var v [8]byte
		for j := 0; j < n; j++ {
			d := dec[group[j]]
			if d == invalid {
				return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, group[j], i+j)
			}
			v[j] = d
		}
		var b [5]byte
		b[0] = v[0]<<3 | v[1]>>2
		b[1] = (v[1]&0x03)<<6 | v[2]<<1 | v[3]>>4
		b[2] = (v[3]&0x0F)<<4 | v[4]>>1
		b[3] = (v[4]&0x01)<<7 | v[5]<<2 | v[6]>>3
		b[4] = (v[6]&0x07)<<5 | v[7]
		nb := 5
		if n < 8 {
			nb = partialBytes[n]
		}
		out = append(out, b[:nb]...)
	}
	return out, nil
}
