// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Character-class predicates (component B) used by the scanner to classify
// the byte at a given buffer offset without decoding it to a rune first.
// The stream is always UTF-8 internally by the time the scanner sees it, so
// multi-byte characters are recognized by their distinctive leading bytes.

package libyaml

const (
	input_raw_buffer_size = 512
	input_buffer_size     = input_raw_buffer_size * 3
	initial_stack_size    = 16
	initial_queue_size    = 16
)

// isAlpha reports whether b[i] is alphanumeric, '_' or '-'.
func isAlpha(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'Z' || b[i] >= 'a' && b[i] <= 'z' || b[i] == '_' || b[i] == '-'
}

func isDigit(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

func asDigit(b []byte, i int) int {
	return int(b[i]) - '0'
}

func isHex(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'F' || b[i] >= 'a' && b[i] <= 'f'
}

func asHex(b []byte, i int) int {
	bi := b[i]
	if bi >= 'A' && bi <= 'F' {
		return int(bi) - 'A' + 10
	}
	if bi >= 'a' && bi <= 'f' {
		return int(bi) - 'a' + 10
	}
	return int(bi) - '0'
}

// isPrintable reports whether the character at the start of b can appear
// unescaped in a YAML stream.
func isPrintable(b []byte) bool {
	return (b[0] == 0x0A) ||
		(b[0] >= 0x20 && b[0] <= 0x7E) ||
		(b[0] == 0xC2 && b[1] >= 0xA0) ||
		(b[0] > 0xC2 && b[0] < 0xED) ||
		(b[0] == 0xED && b[1] < 0xA0) ||
		(b[0] == 0xEE) ||
		(b[0] == 0xEF &&
			!(b[1] == 0xBB && b[2] == 0xBF) &&
			!(b[1] == 0xBF && (b[2] == 0xBE || b[2] == 0xBF)))
}

func isZ(b []byte, i int) bool {
	return b[i] == 0x00
}

func isBOM(b []byte) bool {
	return b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

func isSpace(b []byte, i int) bool {
	return b[i] == ' '
}

func isTab(b []byte, i int) bool {
	return b[i] == '\t'
}

func isBlank(b []byte, i int) bool {
	return b[i] == ' ' || b[i] == '\t'
}

func isBreak(b []byte, i int) bool {
	return b[i] == '\r' ||
		b[i] == '\n' ||
		b[i] == 0xC2 && b[i+1] == 0x85 ||
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA8 ||
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA9
}

func isCRLF(b []byte, i int) bool {
	return b[i] == '\r' && b[i+1] == '\n'
}

func isBreakZ(b []byte, i int) bool {
	return isBreak(b, i) || isZ(b, i)
}

func isSpaceZ(b []byte, i int) bool {
	return isSpace(b, i) || isBreakZ(b, i)
}

func isBlankZ(b []byte, i int) bool {
	return isBlank(b, i) || isBreakZ(b, i)
}

// width returns the length in bytes of the UTF-8 character starting with b,
// or 0 if b is not a valid leading byte.
func width(b byte) int {
	if b&0x80 == 0x00 {
		return 1
	}
	if b&0xE0 == 0xC0 {
		return 2
	}
	if b&0xF0 == 0xE0 {
		return 3
	}
	if b&0xF8 == 0xF0 {
		return 4
	}
	return 0
}
