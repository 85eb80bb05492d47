package csvcore

// Source transport (§4.2): opens a named source or standard input, decodes
// it to a plain byte stream, strips a UTF-8 BOM, validates the result is
// well-formed UTF-8, and detects `.gz`/`.bz2` compression by filename
// suffix. Declared-encoding recoding is an external collaborator contract
// (§1, "Deliberately out of scope"); OpenSource only ever hands the
// tokenizer a reader it believes is already UTF-8.

import (
	"bytes"
	"compress/bzip2"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// OpenSource opens path (or stdin when path is "-"), transparently
// decompressing a `.gz`/`.bz2` suffix, and returns a reader positioned past
// any UTF-8 BOM. The caller is responsible for closing the returned closer
// when non-nil (stdin and decompressor wrappers have no resources to
// release and return a nil closer).
func OpenSource(path string) (io.Reader, io.Closer, error) {
	var raw io.Reader
	var closer io.Closer

	if path == "-" || path == "" {
		raw = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		raw = f
		closer = f
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(raw)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return nil, nil, err
		}
		raw = gz
	case strings.HasSuffix(path, ".bz2"):
		raw = bzip2.NewReader(raw)
	}

	stripped, err := stripBOM(raw)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, err
	}
	return stripped, closer, nil
}

// stripBOM peeks the first three bytes of r and, if they are the UTF-8 BOM,
// discards them. It never blocks past the bytes needed to decide.
func stripBOM(r io.Reader) (io.Reader, error) {
	buf := make([]byte, len(utf8BOM))
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if n == len(utf8BOM) && bytes.Equal(buf, utf8BOM) {
		return r, nil
	}
	return io.MultiReader(bytes.NewReader(buf[:n]), r), nil
}

// ValidatingReader wraps r and fails with *EncodingError at the first byte
// sequence that is not well-formed UTF-8 (§4.2, step 3).
type ValidatingReader struct {
	src      io.Reader
	offset   int64
	buf      []byte // bytes carried over from the previous Read: [0:bufValid] already validated, rest an incomplete rune tail
	bufValid int
}

// NewValidatingReader returns a ValidatingReader reading from src.
func NewValidatingReader(src io.Reader) *ValidatingReader {
	return &ValidatingReader{src: src}
}

func (v *ValidatingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	// Drain anything already validated and pending from a previous Read
	// before pulling more from the source.
	if len(v.buf) > 0 && v.bufValid > 0 {
		n := copy(p, v.buf[:v.bufValid])
		v.offset += int64(n)
		v.buf = v.buf[n:]
		v.bufValid -= n
		return n, nil
	}

	chunk := make([]byte, len(p))
	n, rerr := v.src.Read(chunk)
	data := append(v.buf, chunk[:n]...)
	v.buf = nil
	v.bufValid = 0
	atEOF := rerr == io.EOF

	valid := len(data)
	if !atEOF {
		// The tail may be an incomplete (but so-far-valid) rune prefix; hold
		// it back until the next Read supplies the rest.
		for valid > 0 && len(data)-valid < utf8.UTFMax {
			r, size := utf8.DecodeLastRune(data[:valid])
			if r != utf8.RuneError || size != 1 {
				break
			}
			valid--
		}
	}

	for i := 0; i < valid; {
		r, size := utf8.DecodeRune(data[i:valid])
		if r == utf8.RuneError && size <= 1 {
			return 0, &EncodingError{Byte: data[i], Offset: v.offset + int64(i)}
		}
		i += size
	}

	if atEOF && valid < len(data) {
		// Bytes past `valid` never formed a complete rune before the source
		// ran dry: that tail is malformed UTF-8.
		return 0, &EncodingError{Byte: data[valid], Offset: v.offset + int64(valid)}
	}

	copied := copy(p, data[:valid])
	v.offset += int64(copied)
	v.buf = data[copied:]
	v.bufValid = valid - copied

	if copied == 0 {
		if rerr != nil {
			return 0, rerr
		}
		return 0, nil
	}
	return copied, nil
}
