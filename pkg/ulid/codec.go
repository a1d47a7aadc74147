package ulid

import "fmt"

// EncodedSize is the length of the canonical text form.
const EncodedSize = 26

// Crockford Base32 alphabet. I, L, O, U are excluded to avoid visual
// ambiguity.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// invalid marks a byte with no 5-bit mapping in the decode table.
const invalid = 0xFF

// dec maps a raw character code to its 5-bit value. Built once at init:
// case-insensitive, with the Crockford substitutions i/l -> 1 and o -> 0.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		dec[c] = byte(i)
		dec[c|0x20] = byte(i) // lowercase; digits unaffected (no letter aliases)
	}
	dec['I'], dec['i'] = 1, 1
	dec['L'], dec['l'] = 1, 1
	dec['O'], dec['o'] = 0, 0
}

// encode renders u as its 26-character canonical form.
//
// The 128 bits are treated as a 130-bit field with 2 bits of leading
// padding (26 x 5 = 130): the first symbol carries only the top 3 bits of
// hi (range 0-7), symbol 13 straddles the word boundary (1 bit of hi, 4
// bits of lo), and the rest are plain 5-bit groups. Fully unrolled: a fixed
// number of shifts and table lookups, no allocation beyond the result.
func encode(u ULID) string {
	var b [EncodedSize]byte
	encodeTo(&b, u)
	return string(b[:])
}

func encodeTo(b *[EncodedSize]byte, u ULID) {
	hi, lo := u.hi, u.lo

	b[0] = alphabet[hi>>61] // top 3 bits only
	b[1] = alphabet[hi>>56&31]
	b[2] = alphabet[hi>>51&31]
	b[3] = alphabet[hi>>46&31]
	b[4] = alphabet[hi>>41&31]
	b[5] = alphabet[hi>>36&31]
	b[6] = alphabet[hi>>31&31]
	b[7] = alphabet[hi>>26&31]
	b[8] = alphabet[hi>>21&31]
	b[9] = alphabet[hi>>16&31]
	b[10] = alphabet[hi>>11&31]
	b[11] = alphabet[hi>>6&31]
	b[12] = alphabet[hi>>1&31]
	b[13] = alphabet[(hi&1)<<4|lo>>60] // straddles hi/lo
	b[14] = alphabet[lo>>55&31]
	b[15] = alphabet[lo>>50&31]
	b[16] = alphabet[lo>>45&31]
	b[17] = alphabet[lo>>40&31]
	b[18] = alphabet[lo>>35&31]
	b[19] = alphabet[lo>>30&31]
	b[20] = alphabet[lo>>25&31]
	b[21] = alphabet[lo>>20&31]
	b[22] = alphabet[lo>>15&31]
	b[23] = alphabet[lo>>10&31]
	b[24] = alphabet[lo>>5&31]
	b[25] = alphabet[lo&31]
}

// decode is the exact inverse of encode. It rejects wrong lengths, stops at
// the first character with no table mapping, and rejects a first symbol
// above 7 (any such string denotes a value outside 128 bits).
func decode(s string) (ULID, error) {
	if len(s) != EncodedSize {
		return ULID{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), EncodedSize)
	}

	var v [EncodedSize]uint64
	for i := 0; i < EncodedSize; i++ {
		d := dec[s[i]]
		if d == invalid {
			return ULID{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		v[i] = uint64(d)
	}
	if v[0] > 7 {
		return ULID{}, fmt.Errorf("%w: %q at position 0 exceeds the 3-bit leading range", ErrInvalidCharacter, s[0])
	}

	hi := v[0]<<61 |
		v[1]<<56 | v[2]<<51 | v[3]<<46 | v[4]<<41 |
		v[5]<<36 | v[6]<<31 | v[7]<<26 | v[8]<<21 |
		v[9]<<16 | v[10]<<11 | v[11]<<6 | v[12]<<1 |
		v[13]>>4
	lo := v[13]<<60 |
		v[14]<<55 | v[15]<<50 | v[16]<<45 | v[17]<<40 |
		v[18]<<35 | v[19]<<30 | v[20]<<25 | v[21]<<20 |
		v[22]<<15 | v[23]<<10 | v[24]<<5 | v[25]
	return ULID{hi: hi, lo: lo}, nil
}
