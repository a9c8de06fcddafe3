// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Scalar and directive readers (components D and E): materializes the body
// of quoted, block and plain scalars (chomping, folding, escapes) and scans
// the %YAML / %TAG directives and the anchor/alias/tag indicators.

package libyaml

func (parser *Parser) scanAnchor(typ TokenType) (*Token, error) {
	start_mark := parser.mark
	parser.skip()
	var s []byte
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	end_mark := parser.mark
	if err := parser.update(1); err != nil {
		return nil, err
	}
	if len(s) == 0 || !(isBlankZ(parser.buffer, parser.buffer_pos) || bytesContain(parser.buffer[parser.buffer_pos], "?:,]}%@`")) {
		return nil, newScannerError(InvalidTag, "while scanning an anchor or alias", start_mark, "did not find expected alphabetic or numeric character", parser.mark)
	}
	return &Token{Type: typ, StartMark: start_mark, EndMark: end_mark, Value: s}, nil
}

func bytesContain(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

func (parser *Parser) scanTag() (*Token, error) {
	start_mark := parser.mark
	var handle, suffix []byte

	if err := parser.update(2); err != nil {
		return nil, err
	}
	if parser.buffer[parser.buffer_pos+1] == '<' {
		parser.skip()
		parser.skip()
		var err error
		suffix, err = parser.scanTagURI(false, nil, start_mark)
		if err != nil {
			return nil, err
		}
		if err := parser.update(1); err != nil {
			return nil, err
		}
		if parser.buffer[parser.buffer_pos] != '>' {
			return nil, newScannerError(InvalidTag, "while scanning a tag", start_mark, "did not find the expected '>'", parser.mark)
		}
		parser.skip()
	} else {
		var err error
		handle, err = parser.scanTagHandle(false, start_mark)
		if err != nil {
			return nil, err
		}
		if len(handle) >= 2 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			suffix, err = parser.scanTagURI(false, nil, start_mark)
			if err != nil {
				return nil, err
			}
		} else {
			suffix, err = parser.scanTagURI(false, handle[1:], start_mark)
			if err != nil {
				return nil, err
			}
			handle = []byte("!")
		}
	}

	if err := parser.update(1); err != nil {
		return nil, err
	}
	if !isBlankZ(parser.buffer, parser.buffer_pos) {
		if parser.flow_level == 0 || parser.buffer[parser.buffer_pos] != ',' {
			return nil, newScannerError(InvalidTag, "while scanning a tag", start_mark, "did not find expected whitespace or line break", parser.mark)
		}
	}
	if len(suffix) == 0 {
		return nil, newScannerError(TagWithNoSuffix, "while scanning a tag", start_mark, "found a tag with no suffix", parser.mark)
	}
	return &Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: handle, suffix: suffix}, nil
}

// scanTagHandle scans '!', '!!' or '!name!'.
func (parser *Parser) scanTagHandle(directive bool, start_mark Mark) ([]byte, error) {
	if err := parser.update(1); err != nil {
		return nil, err
	}
	if parser.buffer[parser.buffer_pos] != '!' {
		return nil, newScannerError(InvalidTag, contextFor(directive), start_mark, "did not find expected '!'", parser.mark)
	}
	var s []byte
	s = parser.read(s)
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	if parser.buffer[parser.buffer_pos] == '!' {
		s = parser.read(s)
	} else if directive && !(s[0] == '!' && len(s) == 1) {
		return nil, newScannerError(InvalidTag, contextFor(directive), start_mark, "did not find expected '!'", parser.mark)
	}
	return s, nil
}

func contextFor(directive bool) string {
	if directive {
		return "while scanning a tag directive"
	}
	return "while scanning a tag"
}

// scanTagURI scans a tag suffix or verbatim tag, percent-decoding %XX
// escapes as it goes.
func (parser *Parser) scanTagURI(directive bool, head []byte, start_mark Mark) ([]byte, error) {
	var s []byte
	if len(head) > 1 {
		s = append(s, head...)
	}
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) || bytesContain(parser.buffer[parser.buffer_pos], ";/?:@&=+$,_.!~*'()[]%-") {
		if parser.buffer[parser.buffer_pos] == '%' {
			var err error
			s, err = parser.scanURIEscapes(directive, start_mark, s)
			if err != nil {
				return nil, err
			}
		} else {
			s = parser.read(s)
		}
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	if len(s) == 0 {
		return nil, newScannerError(InvalidTag, contextFor(directive), start_mark, "did not find expected tag URI", parser.mark)
	}
	return s, nil
}

func (parser *Parser) scanURIEscapes(directive bool, start_mark Mark, s []byte) ([]byte, error) {
	var width int
	for {
		if err := parser.update(3); err != nil {
			return nil, err
		}
		if !(parser.buffer[parser.buffer_pos] == '%' && isHex(parser.buffer, parser.buffer_pos+1) && isHex(parser.buffer, parser.buffer_pos+2)) {
			return nil, newScannerError(InvalidEscape, contextFor(directive), start_mark, "did not find URI escaped octet", parser.mark)
		}
		octet := byte(asHex(parser.buffer, parser.buffer_pos+1)<<4 + asHex(parser.buffer, parser.buffer_pos+2))
		if width == 0 {
			w := widthFromLead(octet)
			if w == 0 {
				return nil, newScannerError(InvalidEscape, contextFor(directive), start_mark, "found an incorrect leading UTF-8 octet", parser.mark)
			}
			width = w
		} else if octet&0xC0 != 0x80 {
			return nil, newScannerError(InvalidEscape, contextFor(directive), start_mark, "found an incorrect trailing UTF-8 octet", parser.mark)
		}
		s = append(s, octet)
		parser.skip()
		parser.skip()
		parser.skip()
		width--
		if width == 0 {
			break
		}
	}
	return s, nil
}

func widthFromLead(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// scanDirective dispatches %YAML / %TAG and skips anything else to the end
// of the line.
func (parser *Parser) scanDirective() (*Token, error) {
	start_mark := parser.mark
	parser.skip()
	name, err := parser.scanDirectiveName(start_mark)
	if err != nil {
		return nil, err
	}
	var token *Token
	switch string(name) {
	case "YAML":
		major, minor, err := parser.scanVersionDirectiveValue(start_mark)
		if err != nil {
			return nil, err
		}
		token = &Token{Type: VERSION_DIRECTIVE_TOKEN, StartMark: start_mark, EndMark: parser.mark, major: major, minor: minor}
	case "TAG":
		handle, prefix, err := parser.scanTagDirectiveValue(start_mark)
		if err != nil {
			return nil, err
		}
		token = &Token{Type: TAG_DIRECTIVE_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: handle, prefix: prefix}
	default:
		for !isBreakZ(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
		token = &Token{Type: VERSION_DIRECTIVE_TOKEN, StartMark: start_mark, EndMark: parser.mark}
	}
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakZ(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
	}
	if !isBreakZ(parser.buffer, parser.buffer_pos) {
		return nil, newScannerError(UnexpectedToken, "while scanning a directive", start_mark, "did not find expected comment or line break", parser.mark)
	}
	if isBreak(parser.buffer, parser.buffer_pos) {
		if err := parser.update(2); err != nil {
			return nil, err
		}
		parser.skipLine()
	}
	return token, nil
}

func (parser *Parser) scanDirectiveName(start_mark Mark) ([]byte, error) {
	var s []byte
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	if len(s) == 0 {
		return nil, newScannerError(UnexpectedToken, "while scanning a directive", start_mark, "could not find expected directive name", parser.mark)
	}
	if !isBlankZ(parser.buffer, parser.buffer_pos) {
		return nil, newScannerError(UnexpectedToken, "while scanning a directive", start_mark, "found unexpected non-alphabetical character", parser.mark)
	}
	return s, nil
}

func (parser *Parser) scanVersionDirectiveValue(start_mark Mark) (major, minor int8, _ error) {
	if err := parser.update(1); err != nil {
		return 0, 0, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.update(1); err != nil {
			return 0, 0, err
		}
	}
	major, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return 0, 0, err
	}
	if parser.buffer[parser.buffer_pos] != '.' {
		return 0, 0, newScannerError(UnexpectedToken, "while scanning a %YAML directive", start_mark, "did not find expected digit or '.' character", parser.mark)
	}
	parser.skip()
	minor, err = parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

const maxVersionNumberLength = 9

func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark) (int8, error) {
	value := 0
	length := 0
	if err := parser.update(1); err != nil {
		return 0, err
	}
	for isDigit(parser.buffer, parser.buffer_pos) {
		length++
		if length > maxVersionNumberLength {
			return 0, newScannerError(UnexpectedToken, "while scanning a %YAML directive", start_mark, "found extremely long version number", parser.mark)
		}
		value = value*10 + asDigit(parser.buffer, parser.buffer_pos)
		parser.skip()
		if err := parser.update(1); err != nil {
			return 0, err
		}
	}
	if length == 0 {
		return 0, newScannerError(UnexpectedToken, "while scanning a %YAML directive", start_mark, "did not find expected version number", parser.mark)
	}
	return int8(value), nil
}

func (parser *Parser) scanTagDirectiveValue(start_mark Mark) (handle, prefix []byte, _ error) {
	if err := parser.update(1); err != nil {
		return nil, nil, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.update(1); err != nil {
			return nil, nil, err
		}
	}
	handle, err := parser.scanTagHandle(true, start_mark)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.update(1); err != nil {
		return nil, nil, err
	}
	if !isBlank(parser.buffer, parser.buffer_pos) {
		return nil, nil, newScannerError(UnexpectedToken, "while scanning a %TAG directive", start_mark, "did not find expected whitespace", parser.mark)
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.update(1); err != nil {
			return nil, nil, err
		}
	}
	prefix, err = parser.scanTagURI(true, nil, start_mark)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.update(1); err != nil {
		return nil, nil, err
	}
	if !isBlankZ(parser.buffer, parser.buffer_pos) {
		return nil, nil, newScannerError(UnexpectedToken, "while scanning a %TAG directive", start_mark, "did not find expected whitespace or line break", parser.mark)
	}
	return handle, prefix, nil
}

// scanBlockScalar reads a literal ('|') or folded ('>') block scalar,
// applying the indentation-indicator/chomping-indicator header and the
// strip/clip/keep trailing-newline rule it selects.
func (parser *Parser) scanBlockScalar(literal bool) (*Token, error) {
	start_mark := parser.mark
	parser.skip()

	var increment, indent int
	chomping := 0 // 0 clip, 1 strip, -1 keep
	sawIndicator := false
	if err := parser.update(1); err != nil {
		return nil, err
	}
	for parser.buffer[parser.buffer_pos] == '+' || parser.buffer[parser.buffer_pos] == '-' || isDigit(parser.buffer, parser.buffer_pos) {
		if isDigit(parser.buffer, parser.buffer_pos) {
			if parser.buffer[parser.buffer_pos] == '0' {
				return nil, newScannerError(InvalidScalar, "while scanning a block scalar", start_mark, "found an indentation indicator equal to 0", parser.mark)
			}
			increment = asDigit(parser.buffer, parser.buffer_pos)
			sawIndicator = true
		} else if parser.buffer[parser.buffer_pos] == '+' {
			chomping = -1
		} else {
			chomping = 1
		}
		parser.skip()
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.update(1); err != nil {
			return nil, err
		}
	}
	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakZ(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
	}
	if !isBreakZ(parser.buffer, parser.buffer_pos) {
		return nil, newScannerError(UnexpectedToken, "while scanning a block scalar", start_mark, "did not find expected comment or line break", parser.mark)
	}
	if isBreak(parser.buffer, parser.buffer_pos) {
		if err := parser.update(2); err != nil {
			return nil, err
		}
		parser.skipLine()
	}

	end_mark := parser.mark
	if sawIndicator {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}
	var s, leadingBreak, trailingBreaks []byte
	var increased, trailingBlank bool
	for {
		if err := parser.update(1); err != nil {
			return nil, err
		}
		var bErr error
		trailingBreaks, end_mark, bErr = parser.scanBlockScalarBreaks(&indent, trailingBreaks, start_mark, &increased)
		if bErr != nil {
			return nil, bErr
		}
		if err := parser.update(1); err != nil {
			return nil, err
		}
		if parser.mark.Column < indent || isZ(parser.buffer, parser.buffer_pos) {
			break
		}
		leadingBlank := isBlank(parser.buffer, parser.buffer_pos)
		if len(leadingBreak) > 0 {
			if !literal && leadingBreak[0] == '\n' && !leadingBlank && !trailingBlank {
				if len(trailingBreaks) == 0 {
					s = append(s, ' ')
				}
			} else {
				s = append(s, leadingBreak...)
			}
			leadingBreak = leadingBreak[:0]
		}
		s = append(s, trailingBreaks...)
		trailingBreaks = trailingBreaks[:0]

		for !isBreakZ(parser.buffer, parser.buffer_pos) {
			s = parser.read(s)
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
		if err := parser.update(2); err != nil {
			return nil, err
		}
		leadingBreak = parser.readLine(leadingBreak)
		trailingBlank = leadingBlank
	}
	if chomping != 1 {
		s = append(s, leadingBreak...)
	}
	if chomping == -1 {
		s = append(s, trailingBreaks...)
	}

	style := LITERAL_SCALAR_STYLE
	if !literal {
		style = FOLDED_SCALAR_STYLE
	}
	return &Token{Type: SCALAR_TOKEN, StartMark: start_mark, EndMark: end_mark, Value: s, Style: style}, nil
}

func (parser *Parser) scanBlockScalarBreaks(indent *int, breaks []byte, start_mark Mark, increased *bool) ([]byte, Mark, error) {
	end_mark := parser.mark
	for {
		for (*indent == 0 || parser.mark.Column < *indent) && isSpace(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.update(1); err != nil {
				return nil, end_mark, err
			}
		}
		if *indent == 0 && parser.mark.Column > *indent {
			*indent = parser.mark.Column
			*increased = true
		}
		if isTab(parser.buffer, parser.buffer_pos) && (*indent == 0 || parser.mark.Column < *indent) {
			return nil, end_mark, newScannerError(InvalidScalar, "while scanning a block scalar", start_mark, "found a tab character where an indentation space is expected", parser.mark)
		}
		if !isBreak(parser.buffer, parser.buffer_pos) {
			break
		}
		if err := parser.update(2); err != nil {
			return nil, end_mark, err
		}
		breaks = parser.readLine(breaks)
		end_mark = parser.mark
	}
	return breaks, end_mark, nil
}

// scanFlowScalar reads a single- or double-quoted scalar, decoding escapes
// in the double-quoted case.
func (parser *Parser) scanFlowScalar(single bool) (*Token, error) {
	start_mark := parser.mark
	parser.skip()
	var s []byte
	for {
		if err := parser.update(4); err != nil {
			return nil, err
		}
		if parser.mark.Column == 0 && (hasPrefixAt(parser.buffer, parser.buffer_pos, "---") || hasPrefixAt(parser.buffer, parser.buffer_pos, "...")) && isBlankZ(parser.buffer, parser.buffer_pos+3) {
			return nil, newScannerError(UnexpectedEOF, "while scanning a quoted scalar", start_mark, "found unexpected document indicator", parser.mark)
		}
		if isZ(parser.buffer, parser.buffer_pos) {
			return nil, newScannerError(UnexpectedEOF, "while scanning a quoted scalar", start_mark, "found unexpected end of stream", parser.mark)
		}
		for !isBlankZ(parser.buffer, parser.buffer_pos) {
			if single && parser.buffer[parser.buffer_pos] == '\'' && parser.buffer[parser.buffer_pos+1] == '\'' {
				s = append(s, '\'')
				parser.skip()
				parser.skip()
			} else if single && parser.buffer[parser.buffer_pos] == '\'' {
				break
			} else if !single && parser.buffer[parser.buffer_pos] == '"' {
				break
			} else if !single && parser.buffer[parser.buffer_pos] == '\\' && isBreak(parser.buffer, parser.buffer_pos+1) {
				if err := parser.update(3); err != nil {
					return nil, err
				}
				parser.skip()
				parser.skipLine()
				break
			} else if !single && parser.buffer[parser.buffer_pos] == '\\' {
				var err error
				s, err = parser.scanFlowScalarEscape(s, start_mark)
				if err != nil {
					return nil, err
				}
			} else {
				s = parser.read(s)
			}
			if err := parser.update(2); err != nil {
				return nil, err
			}
		}
		if err := parser.update(1); err != nil {
			return nil, err
		}
		if single && parser.buffer[parser.buffer_pos] == '\'' {
			break
		}
		if !single && parser.buffer[parser.buffer_pos] == '"' {
			break
		}

		var whitespaces, leadingBreak []byte
		for isBlank(parser.buffer, parser.buffer_pos) {
			whitespaces = parser.read(whitespaces)
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
		if isBreak(parser.buffer, parser.buffer_pos) {
			if err := parser.update(2); err != nil {
				return nil, err
			}
			leadingBreak = parser.readLine(leadingBreak)
			var trailingBreaks []byte
			for {
				if err := parser.update(1); err != nil {
					return nil, err
				}
				for isBlank(parser.buffer, parser.buffer_pos) {
					parser.skip()
					if err := parser.update(1); err != nil {
						return nil, err
					}
				}
				if !isBreak(parser.buffer, parser.buffer_pos) {
					break
				}
				if err := parser.update(2); err != nil {
					return nil, err
				}
				trailingBreaks = parser.readLine(trailingBreaks)
			}
			if leadingBreak[0] != '\n' {
				s = append(s, leadingBreak...)
				s = append(s, trailingBreaks...)
			} else if len(trailingBreaks) == 0 {
				s = append(s, ' ')
			} else {
				s = append(s, trailingBreaks...)
			}
		} else {
			s = append(s, whitespaces...)
		}
	}
	parser.skip()
	end_mark := parser.mark
	style := SINGLE_QUOTED_SCALAR_STYLE
	if !single {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	return &Token{Type: SCALAR_TOKEN, StartMark: start_mark, EndMark: end_mark, Value: s, Style: style}, nil
}

var simpleEscapes = map[byte]byte{
	'0': 0, 'a': '\a', 'b': '\b', 't': '\t', 'n': '\n', 'v': '\v', 'f': '\f', 'r': '\r',
	'e': 0x1B, ' ': ' ', '"': '"', '\'': '\'', '\\': '\\',
}

// multiByteEscapes holds the UTF-8 encodings of the named escapes whose
// replacement is not a single byte: \N (U+0085), \_ (U+00A0), \L (U+2028),
// \P (U+2029).
var multiByteEscapes = map[byte][]byte{
	'N': {0xC2, 0x85},
	'_': {0xC2, 0xA0},
	'L': {0xE2, 0x80, 0xA8},
	'P': {0xE2, 0x80, 0xA9},
}

func (parser *Parser) scanFlowScalarEscape(s []byte, start_mark Mark) ([]byte, error) {
	if err := parser.update(2); err != nil {
		return nil, err
	}
	c := parser.buffer[parser.buffer_pos+1]
	if mb, ok := multiByteEscapes[c]; ok {
		s = append(s, mb...)
		parser.skip()
		parser.skip()
		return s, nil
	}
	if repl, ok := simpleEscapes[c]; ok {
		s = append(s, repl)
		parser.skip()
		parser.skip()
		return s, nil
	}
	var codeLength int
	switch c {
	case 'x':
		codeLength = 2
	case 'u':
		codeLength = 4
	case 'U':
		codeLength = 8
	default:
		return nil, newScannerError(InvalidEscape, "while parsing a quoted scalar", start_mark, "found unknown escape character", parser.mark)
	}
	parser.skip()
	parser.skip()
	if err := parser.update(codeLength); err != nil {
		return nil, err
	}
	var value rune
	for k := 0; k < codeLength; k++ {
		if !isHex(parser.buffer, parser.buffer_pos+k) {
			return nil, newScannerError(InvalidEscape, "while parsing a quoted scalar", start_mark, "did not find expected hexadecimal number", parser.mark)
		}
		value = value<<4 + rune(asHex(parser.buffer, parser.buffer_pos+k))
	}
	if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
		return nil, newScannerError(InvalidEscape, "while parsing a quoted scalar", start_mark, "found invalid Unicode character escape code", parser.mark)
	}
	s = append(s, encodeUTF8(value)...)
	for k := 0; k < codeLength; k++ {
		parser.skip()
	}
	return s, nil
}

// scanPlainScalar reads an unquoted scalar, folding line breaks the same
// way a folded block scalar does and stopping at the first indicator that
// cannot appear unquoted in the current context.
func (parser *Parser) scanPlainScalar() (*Token, error) {
	start_mark := parser.mark
	end_mark := parser.mark
	indent := parser.indent + 1
	var s, leadingBreak, trailingBreaks, whitespaces []byte
	leadingBlanks := false

	for {
		if err := parser.update(4); err != nil {
			return nil, err
		}
		if parser.mark.Column == 0 && (hasPrefixAt(parser.buffer, parser.buffer_pos, "---") || hasPrefixAt(parser.buffer, parser.buffer_pos, "...")) && isBlankZ(parser.buffer, parser.buffer_pos+3) {
			break
		}
		if parser.buffer[parser.buffer_pos] == '#' {
			break
		}
		for !isBlankZ(parser.buffer, parser.buffer_pos) {
			if parser.flow_level > 0 && parser.buffer[parser.buffer_pos] == ':' && isBlankZ(parser.buffer, parser.buffer_pos+1) {
				break
			}
			if parser.flow_level > 0 && bytesContain(parser.buffer[parser.buffer_pos], ",[]{}") {
				break
			}
			if parser.buffer[parser.buffer_pos] == ':' && isBlankZ(parser.buffer, parser.buffer_pos+1) {
				break
			}
			if leadingBlanks {
				if leadingBreak[0] == '\n' {
					if len(trailingBreaks) == 0 {
						s = append(s, ' ')
					} else {
						s = append(s, trailingBreaks...)
					}
				} else {
					s = append(s, leadingBreak...)
					s = append(s, trailingBreaks...)
				}
				leadingBreak = leadingBreak[:0]
				trailingBreaks = trailingBreaks[:0]
				leadingBlanks = false
			} else if len(whitespaces) > 0 {
				s = append(s, whitespaces...)
				whitespaces = whitespaces[:0]
			}
			s = parser.read(s)
			end_mark = parser.mark
			if err := parser.update(2); err != nil {
				return nil, err
			}
		}
		if !(isBlank(parser.buffer, parser.buffer_pos) || isBreak(parser.buffer, parser.buffer_pos)) {
			break
		}
		if err := parser.update(1); err != nil {
			return nil, err
		}
		for isBlank(parser.buffer, parser.buffer_pos) {
			whitespaces = parser.read(whitespaces)
			if err := parser.update(1); err != nil {
				return nil, err
			}
		}
		if isBreak(parser.buffer, parser.buffer_pos) {
			if err := parser.update(2); err != nil {
				return nil, err
			}
			if !leadingBlanks {
				leadingBreak = parser.readLine(leadingBreak)
			} else {
				trailingBreaks = parser.readLine(trailingBreaks)
			}
			leadingBlanks = true
			whitespaces = whitespaces[:0]
			for {
				if err := parser.update(1); err != nil {
					return nil, err
				}
				for isBlank(parser.buffer, parser.buffer_pos) {
					parser.skip()
					if err := parser.update(1); err != nil {
						return nil, err
					}
				}
				if !isBreak(parser.buffer, parser.buffer_pos) {
					break
				}
				if err := parser.update(2); err != nil {
					return nil, err
				}
				trailingBreaks = parser.readLine(trailingBreaks)
			}
			if parser.flow_level == 0 && parser.mark.Column < indent {
				break
			}
		}
	}
	if leadingBlanks {
		parser.simple_key_allowed = true
	}
	return &Token{Type: SCALAR_TOKEN, StartMark: start_mark, EndMark: end_mark, Value: s, Style: PLAIN_SCALAR_STYLE}, nil
}
