package resp

import (
	"fmt"
	"strconv"
)

// findCRLF returns the byte offset of the start of the nth `\r\n` in buf,
// scanning from index 1 so a tag byte sitting at index 0 can never be
// mistaken for the start of a terminator.
func findCRLF(buf []byte, n int) (int, bool) {
	found := 0
	for i := 1; i+1 < len(buf); i++ {
		if buf[i] == '\r' && buf[i+1] == '\n' {
			found++
			if found == n {
				return i, true
			}
		}
	}
	return 0, false
}

// extractFrameHeader locates the CRLF ending a header line that must
// begin with tag. It never mutates or reslices buf; it only reports where
// the header ends.
func extractFrameHeader(buf []byte, tag byte) (headerEnd int, err error) {
	if len(buf) < 3 {
		return 0, ErrIncompleteFrame
	}
	if buf[0] != tag {
		return 0, fmt.Errorf("resp: expected tag %q, got %q: %w", tag, buf[0], ErrInvalidFrameType)
	}
	idx, ok := findCRLF(buf, 1)
	if !ok {
		return 0, ErrIncompleteFrame
	}
	return idx, nil
}

// extractFixedToken reports how many bytes of a known literal token
// (e.g. "#t\r\n") sit at the head of buf, without consuming anything.
// It compares byte by byte rather than length-gating first: a short buf
// that has already diverged from token (e.g. "*0" against "*-1\r\n") can
// never become token no matter what arrives next, so that's reported as
// ErrInvalidFrameType, not ErrIncompleteFrame. Only a buf that is a true
// prefix of token is incomplete.
func extractFixedToken(buf []byte, token, label string) (int, error) {
	n := len(buf)
	if n > len(token) {
		n = len(token)
	}
	if string(buf[:n]) != token[:n] {
		return 0, fmt.Errorf("resp: invalid %s token: %w", label, ErrInvalidFrameType)
	}
	if len(buf) < len(token) {
		return 0, ErrIncompleteFrame
	}
	return len(token), nil
}

// parseLen reads the header line `<tag><decimal>\r\n` and returns the
// offset of the terminating CRLF plus the decoded length. Negative
// lengths are returned as-is; callers decide what -1 means for their tag.
func parseLen(buf []byte, tag byte) (headerEnd int, length int64, err error) {
	headerEnd, err = extractFrameHeader(buf, tag)
	if err != nil {
		return 0, 0, err
	}
	n, perr := strconv.ParseInt(string(buf[1:headerEnd]), 10, 64)
	if perr != nil {
		return 0, 0, fmt.Errorf("resp: invalid length header %q: %w", buf[1:headerEnd], ErrParseInt)
	}
	return headerEnd, n, nil
}

// calcTotalLen returns the total byte length of a composite frame whose
// header ends at headerEnd and which declares count entries (2*count for
// maps, since each entry is a key frame followed by a value frame). It
// recurses into expectLen for each inner element and never decodes a
// frame's payload — only its size.
func calcTotalLen(buf []byte, headerEnd int, count int64, isMap bool) (int, error) {
	pos := headerEnd + 2
	entries := count
	if isMap {
		entries *= 2
	}
	for i := int64(0); i < entries; i++ {
		if pos > len(buf) {
			return 0, ErrIncompleteFrame
		}
		n, err := expectLen(buf[pos:])
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}

// expectLen mirrors Decode's dispatch but reports only the byte length a
// single top-level frame would occupy, without constructing it and
// without the null-variant probing Decode does — a frame's length is
// fully determined by its tag and header, so there is nothing to probe.
func expectLen(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrIncompleteFrame
	}
	switch buf[0] {
	case '+', '-', ':', ',':
		idx, ok := findCRLF(buf, 1)
		if !ok {
			return 0, ErrIncompleteFrame
		}
		return idx + 2, nil
	case '#':
		if len(buf) < 4 {
			return 0, ErrIncompleteFrame
		}
		return 4, nil
	case '_':
		if len(buf) < 3 {
			return 0, ErrIncompleteFrame
		}
		return 3, nil
	case '$':
		headerEnd, length, err := parseLen(buf, '$')
		if err != nil {
			return 0, err
		}
		total := headerEnd + 2
		if length >= 0 {
			total += int(length) + 2
		}
		if total > len(buf) {
			return 0, ErrIncompleteFrame
		}
		return total, nil
	case '*':
		headerEnd, count, err := parseLen(buf, '*')
		if err != nil {
			return 0, err
		}
		if count < 0 {
			return headerEnd + 2, nil
		}
		return calcTotalLen(buf, headerEnd, count, false)
	case '%':
		headerEnd, count, err := parseLen(buf, '%')
		if err != nil {
			return 0, err
		}
		return calcTotalLen(buf, headerEnd, count, true)
	case '~':
		headerEnd, count, err := parseLen(buf, '~')
		if err != nil {
			return 0, err
		}
		return calcTotalLen(buf, headerEnd, count, false)
	default:
		// An unrecognized leading byte is treated the same as an empty
		// buffer: wait for more input rather than report a violation
		// here. Decode's dispatch makes the same call for the same
		// reason (see the comment on its default case).
		return 0, ErrIncompleteFrame
	}
}
