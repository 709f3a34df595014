package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// decision is the outcome of sniffing the first bytes of a document.
type decision int

const (
	passThrough decision = iota
	stripUTF8BOM
	decodeUTF16LE
	decodeUTF16BE
	decodeWindows1252
	decodeISO8859_9
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8, whatever the
// original encoding of the document was. Detection order: BOM, then
// UTF-8 validation, then charset heuristics, then a Windows-1252
// fallback for the usual spreadsheet exports.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	switch sniff(head) {
	case stripUTF8BOM:
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case decodeUTF16LE:
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case decodeUTF16BE:
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	case decodeWindows1252:
		return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
	case decodeISO8859_9:
		return transform.NewReader(br, charmap.ISO8859_9.NewDecoder()), nil
	default:
		return br, nil
	}
}

func sniff(head []byte) decision {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		return stripUTF8BOM
	case bytes.HasPrefix(head, bomUTF16LE):
		return decodeUTF16LE
	case bytes.HasPrefix(head, bomUTF16BE):
		return decodeUTF16BE
	}

	if utf8.Valid(head) {
		return passThrough
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		switch result.Charset {
		case "UTF-8":
			return passThrough
		case "ISO-8859-9":
			return decodeISO8859_9
		}
	}

	return decodeWindows1252
}
