// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Stream stage (component A): fills the parser's working buffer with UTF-8
// bytes decoded from the raw input, inferring the source encoding from a
// BOM or, failing that, from the null-byte pattern of the first few bytes.

package libyaml

import (
	"io"
	"unicode/utf8"
)

// determineEncoding inspects up to the first four bytes of raw and reports
// the encoding they imply together with how many of those bytes were a BOM
// to be consumed rather than decoded as content.
func determineEncoding(raw []byte) (enc Encoding, bomLen int) {
	switch {
	case len(raw) >= 4 && raw[0] == 0x00 && raw[1] == 0x00 && raw[2] == 0xFE && raw[3] == 0xFF:
		return UTF32BE_ENCODING, 4
	case len(raw) >= 4 && raw[0] == 0xFF && raw[1] == 0xFE && raw[2] == 0x00 && raw[3] == 0x00:
		return UTF32LE_ENCODING, 4
	case len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF:
		return UTF16BE_ENCODING, 2
	case len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE:
		return UTF16LE_ENCODING, 2
	case len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF:
		return UTF8_ENCODING, 3
	}
	// No BOM: infer from the null-byte pattern of a four-byte (or shorter)
	// prefix, per the convention that ASCII-range YAML content puts a zero
	// byte in the high-order position(s) of any wide encoding.
	switch {
	case len(raw) >= 4 && raw[0] == 0x00 && raw[1] == 0x00:
		return UTF32BE_ENCODING, 0
	case len(raw) >= 4 && raw[1] == 0x00 && raw[2] == 0x00 && raw[3] == 0x00:
		return UTF32LE_ENCODING, 0
	case len(raw) >= 2 && raw[0] == 0x00:
		return UTF16BE_ENCODING, 0
	case len(raw) >= 2 && raw[1] == 0x00:
		return UTF16LE_ENCODING, 0
	}
	return UTF8_ENCODING, 0
}

// updateRawBuffer tops up parser.raw_buffer from the read handler until it
// holds at least length unconsumed bytes, or the source is exhausted.
func (parser *Parser) updateRawBuffer(length int) error {
	if parser.raw_buffer_pos == 0 && len(parser.raw_buffer) >= length {
		return nil
	}
	if parser.raw_buffer_pos > 0 {
		copy(parser.raw_buffer, parser.raw_buffer[parser.raw_buffer_pos:])
		parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)-parser.raw_buffer_pos]
		parser.raw_buffer_pos = 0
	}
	if cap(parser.raw_buffer) == len(parser.raw_buffer) {
		parser.raw_buffer = append(parser.raw_buffer, 0)
		parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)-1]
	}
	for !parser.eof && len(parser.raw_buffer) < length {
		free := cap(parser.raw_buffer) - len(parser.raw_buffer)
		if free == 0 {
			break
		}
		n, err := parser.read_handler(parser, parser.raw_buffer[len(parser.raw_buffer):cap(parser.raw_buffer)])
		parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)+n]
		if err == io.EOF {
			parser.eof = true
		} else if err != nil {
			return ReaderError{Kind: UnexpectedEOF, Offset: parser.offset, Err: err}
		}
		if n == 0 {
			break
		}
	}
	return nil
}

// decodeRune decodes one character from raw at off according to enc,
// returning its UTF-8 encoding, the number of raw bytes it consumed, and
// whether the input held a complete character.
func decodeRune(enc Encoding, raw []byte, off int) (utf8Bytes []byte, rawLen int, ok bool) {
	switch enc {
	case UTF8_ENCODING:
		if off >= len(raw) {
			return nil, 0, false
		}
		w := width(raw[off])
		if w == 0 {
			return nil, 1, false
		}
		if off+w > len(raw) {
			return nil, 0, false
		}
		if r, size := utf8.DecodeRune(raw[off : off+w]); r == utf8.RuneError && size <= 1 {
			return nil, w, false
		}
		return raw[off : off+w], w, true
	case UTF16LE_ENCODING, UTF16BE_ENCODING:
		if off+2 > len(raw) {
			return nil, 0, false
		}
		lo, hi := 0, 1
		if enc == UTF16BE_ENCODING {
			lo, hi = 1, 0
		}
		unit := uint16(raw[off+lo]) | uint16(raw[off+hi])<<8
		if unit >= 0xD800 && unit <= 0xDBFF {
			if off+4 > len(raw) {
				return nil, 0, false
			}
			unit2 := uint16(raw[off+2+lo]) | uint16(raw[off+2+hi])<<8
			if unit2 < 0xDC00 || unit2 > 0xDFFF {
				return nil, 4, false
			}
			r := (rune(unit-0xD800)<<10 | rune(unit2-0xDC00)) + 0x10000
			return encodeUTF8(r), 4, true
		}
		if unit >= 0xDC00 && unit <= 0xDFFF {
			return nil, 2, false
		}
		return encodeUTF8(rune(unit)), 2, true
	case UTF32LE_ENCODING, UTF32BE_ENCODING:
		if off+4 > len(raw) {
			return nil, 0, false
		}
		var r rune
		if enc == UTF32LE_ENCODING {
			r = rune(raw[off]) | rune(raw[off+1])<<8 | rune(raw[off+2])<<16 | rune(raw[off+3])<<24
		} else {
			r = rune(raw[off+3]) | rune(raw[off+2])<<8 | rune(raw[off+1])<<16 | rune(raw[off])<<24
		}
		if r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
			return nil, 4, false
		}
		return encodeUTF8(r), 4, true
	}
	return nil, 0, false
}

func encodeUTF8(r rune) []byte {
	switch {
	case r < 0x80:
		return []byte{byte(r)}
	case r < 0x800:
		return []byte{0xC0 | byte(r>>6), 0x80 | byte(r)&0x3F}
	case r < 0x10000:
		return []byte{0xE0 | byte(r>>12), 0x80 | byte(r>>6)&0x3F, 0x80 | byte(r)&0x3F}
	default:
		return []byte{0xF0 | byte(r>>18), 0x80 | byte(r>>12)&0x3F, 0x80 | byte(r>>6)&0x3F, 0x80 | byte(r)&0x3F}
	}
}

// update ensures that parser.unread is at least length, decoding more raw
// input into parser.buffer (always UTF-8 internally) as needed. It is the
// Go equivalent of libyaml's CACHE/UPDATE macro pair: called before the
// scanner dereferences parser.buffer[parser.buffer_pos+k] for any k <
// length.
func (parser *Parser) update(length int) error {
	if parser.unread >= length {
		return nil
	}
	if parser.buffer_pos > 0 {
		copy(parser.buffer, parser.buffer[parser.buffer_pos:])
		parser.buffer = parser.buffer[:len(parser.buffer)-parser.buffer_pos]
		parser.buffer_pos = 0
	}
	if parser.encoding == ANY_ENCODING {
		if err := parser.updateRawBuffer(4); err != nil {
			return err
		}
		enc, bomLen := determineEncoding(parser.raw_buffer)
		parser.encoding = enc
		parser.raw_buffer_pos += bomLen
		parser.offset += bomLen
	}
	for parser.unread < length {
		if parser.raw_buffer_pos >= len(parser.raw_buffer) && parser.eof {
			// Source exhausted: append the end-of-stream sentinel once: the
			// scanner treats a NUL byte as is_z and never advances past it.
			if len(parser.buffer) == 0 || parser.buffer[len(parser.buffer)-1] != 0 {
				parser.buffer = append(parser.buffer, 0)
				parser.unread++
			}
			return nil
		}
		if err := parser.updateRawBuffer(parser.raw_buffer_pos + 4); err != nil {
			return err
		}
		b, n, ok := decodeRune(parser.encoding, parser.raw_buffer, parser.raw_buffer_pos)
		if !ok {
			if n == 0 && !parser.eof {
				if err := parser.updateRawBuffer(parser.raw_buffer_pos + 4); err != nil {
					return err
				}
				continue
			}
			return ReaderError{Kind: InvalidEncoding, Offset: parser.offset, Err: io.ErrUnexpectedEOF}
		}
		parser.buffer = append(parser.buffer, b...)
		parser.raw_buffer_pos += n
		parser.offset += n
		parser.unread++
	}
	return nil
}
