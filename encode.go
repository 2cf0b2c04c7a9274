package coltable

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// measuredWidth is the result of a width measurement: the display width in
// cells, and whether the input could be measured at all. A false ok mirrors
// the original library's SENTINEL return: something about the input (an
// invalid byte sequence it could not safely encode) made width undefined,
// and callers should treat the cell as absent rather than guess.
type measuredWidth struct {
	n  int
	ok bool
}

// safeWidth measures the display width of data, the way a terminal would
// render it: multibyte runes count for their actual cell width (0, 1, or 2),
// not for their byte length. Invalid UTF-8 makes the input unmeasurable.
func safeWidth(data string) measuredWidth {
	if data == "" {
		return measuredWidth{0, true}
	}
	if !utf8.ValidString(data) {
		return measuredWidth{0, false}
	}
	return measuredWidth{runewidth.StringWidth(data), true}
}

// safeEncode returns a copy of data with non-printable ASCII control bytes
// replaced by \xHH escapes, plus that copy's display width. Valid multibyte
// runes pass through unescaped. Invalid UTF-8 makes the input unmeasurable,
// matching safeWidth.
func safeEncode(data string) (string, measuredWidth) {
	if data == "" {
		return "", measuredWidth{0, true}
	}
	if !utf8.ValidString(data) {
		return "", measuredWidth{0, false}
	}

	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		if size == 1 && !strconv.IsPrint(r) {
			fmt.Fprintf(&b, "\\x%02x", data[i])
			i++
			continue
		}
		b.WriteRune(r)
		i += size
	}
	encoded := b.String()
	return encoded, measuredWidth{runewidth.StringWidth(encoded), true}
}

// truncate trims data to a display width at most maxWidth, cutting only at
// rune boundaries. It returns the truncated text and the width actually
// achieved, which may be less than maxWidth if the last rune that would
// have fit is double-width. A maxWidth of 0 or less on non-empty data is
// unachievable and reports ok=false.
func truncate(data string, maxWidth int) (string, measuredWidth) {
	if data == "" {
		return "", measuredWidth{0, true}
	}
	if maxWidth <= 0 {
		return "", measuredWidth{0, false}
	}

	whole := safeWidth(data)
	if !whole.ok {
		return "", measuredWidth{0, false}
	}
	if whole.n <= maxWidth {
		return data, whole
	}

	var b strings.Builder
	width := 0
	for _, r := range data {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String(), measuredWidth{width, true}
}

// fputsNonblank writes data to w verbatim except for embedded NUL bytes,
// which are elided. It backs raw output mode, where whitespace inside a
// field is otherwise printed as-is.
func fputsNonblank(w io.Writer, data string) error {
	if !strings.ContainsRune(data, 0) {
		_, err := io.WriteString(w, data)
		return err
	}
	_, err := io.WriteString(w, strings.ReplaceAll(data, "\x00", ""))
	return err
}

// fputsQuoted writes data to w as a double-quoted token for export mode's
// HEADER="value" pairs, mirroring the original library's fputs_quoted:
// embedded double quotes, backslashes, backquotes, dollar signs, and
// non-printable bytes are escaped as \xHH, embedded NUL bytes are dropped,
// and everything else (including space) passes through unescaped.
func fputsQuoted(w io.Writer, data string) error {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		switch {
		case r == 0:
			// skip embedded NUL
		case r == '"' || r == '\\' || r == '`' || r == '$':
			fmt.Fprintf(&b, "\\x%02x", data[i])
		case size == 1 && !strconv.IsPrint(r):
			fmt.Fprintf(&b, "\\x%02x", data[i])
		default:
			b.WriteRune(r)
		}
		i += size
	}
	b.WriteByte('"')
	_, err := io.WriteString(w, b.String())
	return err
}
