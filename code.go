package huffman

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Bit is a single binary digit.  Only Zero and One are valid.
type Bit byte

const (
	// Zero is the bit emitted when descending to a left child.
	Zero Bit = 0

	// One is the bit emitted when descending to a right child.
	One Bit = 1
)

// Bits represents an explicit sequence of bits.  It is used both for the code
// of a single Symbol and for a whole encoded message.  The first element is
// the first bit.
type Bits []Bit

// ParseBits parses a string of '0' and '1' digits into Bits.
func ParseBits(str string) (Bits, error) {
	out := make(Bits, len(str))
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			out[index] = Zero
		case '1':
			out[index] = One
		default:
			return nil, fmt.Errorf("invalid binary digit %q at offset %d", str[index], index)
		}
	}
	return out, nil
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b)
}

// Clone returns a copy of these Bits that shares no storage with them.
func (b Bits) Clone() Bits {
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// Equal returns true iff b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for index := range b {
		if b[index] != other[index] {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of b.  Every Bits value is a
// prefix of itself.
func (b Bits) HasPrefix(prefix Bits) bool {
	return len(prefix) <= len(b) && b[:len(prefix)].Equal(prefix)
}

// Digits returns the bits as an unquoted string of '0' and '1' digits.  Bits
// that are neither Zero nor One are rendered as '?'.
func (b Bits) Digits() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		switch bit {
		case Zero:
			sb.WriteByte('0')
		case One:
			sb.WriteByte('1')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// String returns the string representation of these Bits.
func (b Bits) String() string {
	return strconv.Quote(b.Digits())
}

// MarshalText fulfills encoding.TextMarshaler.
func (b Bits) MarshalText() ([]byte, error) {
	return []byte(b.Digits()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (b *Bits) UnmarshalText(raw []byte) error {
	parsed, err := ParseBits(string(raw))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

var (
	_ fmt.Stringer             = Bits(nil)
	_ encoding.TextMarshaler   = Bits(nil)
	_ encoding.TextUnmarshaler = (*Bits)(nil)
)
