// Package charset maps text to the character codes a barcode payload is
// built from.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupported indicates a character set name that cannot be resolved.
var ErrUnsupported = errors.New("charset: unsupported character set")

// Default is the character set used when none is named. Its codes are
// UTF-16 code units, one per JavaScript string index.
const Default = "UTF-16"

// Charset is a named text encoding. Codes produced by a charset with
// UnitBits == 16 are 16-bit code units; all others are bytes.
type Charset struct {
	Name     string
	Aliases  []string
	UnitBits int
	Encoding encoding.Encoding
}

// pre-defined charsets
var (
	UTF16      = &Charset{"UTF-16", []string{"UTF-16BE", "UnicodeBig", "UnicodeBigUnmarked"}, 16, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	UTF8       = &Charset{"UTF-8", []string{"UTF8"}, 8, unicode.UTF8}
	CP437      = &Charset{"IBM437", []string{"Cp437"}, 8, charmap.CodePage437}
	ISO8859_1  = &Charset{"ISO-8859-1", []string{"ISO8859_1", "latin1"}, 8, charmap.ISO8859_1}
	ISO8859_2  = &Charset{"ISO-8859-2", []string{"ISO8859_2"}, 8, charmap.ISO8859_2}
	ISO8859_3  = &Charset{"ISO-8859-3", []string{"ISO8859_3"}, 8, charmap.ISO8859_3}
	ISO8859_4  = &Charset{"ISO-8859-4", []string{"ISO8859_4"}, 8, charmap.ISO8859_4}
	ISO8859_5  = &Charset{"ISO-8859-5", []string{"ISO8859_5"}, 8, charmap.ISO8859_5}
	ISO8859_6  = &Charset{"ISO-8859-6", []string{"ISO8859_6"}, 8, charmap.ISO8859_6}
	ISO8859_7  = &Charset{"ISO-8859-7", []string{"ISO8859_7"}, 8, charmap.ISO8859_7}
	ISO8859_8  = &Charset{"ISO-8859-8", []string{"ISO8859_8"}, 8, charmap.ISO8859_8}
	ISO8859_9  = &Charset{"ISO-8859-9", []string{"ISO8859_9"}, 8, charmap.ISO8859_9}
	ISO8859_10 = &Charset{"ISO-8859-10", []string{"ISO8859_10"}, 8, charmap.ISO8859_10}
	ISO8859_13 = &Charset{"ISO-8859-13", []string{"ISO8859_13"}, 8, charmap.ISO8859_13}
	ISO8859_14 = &Charset{"ISO-8859-14", []string{"ISO8859_14"}, 8, charmap.ISO8859_14}
	ISO8859_15 = &Charset{"ISO-8859-15", []string{"ISO8859_15"}, 8, charmap.ISO8859_15}
	ISO8859_16 = &Charset{"ISO-8859-16", []string{"ISO8859_16"}, 8, charmap.ISO8859_16}
	Cp1250     = &Charset{"windows-1250", []string{"Cp1250"}, 8, charmap.Windows1250}
	Cp1251     = &Charset{"windows-1251", []string{"Cp1251"}, 8, charmap.Windows1251}
	Cp1252     = &Charset{"windows-1252", []string{"Cp1252"}, 8, charmap.Windows1252}
	Cp1256     = &Charset{"windows-1256", []string{"Cp1256"}, 8, charmap.Windows1256}
	SJIS       = &Charset{"Shift_JIS", []string{"SJIS"}, 8, japanese.ShiftJIS}
	GB18030    = &Charset{"GB18030", []string{"GB2312", "EUC_CN", "GBK"}, 8, simplifiedchinese.GB18030}
	Big5       = &Charset{"Big5", nil, 8, traditionalchinese.Big5}
	EUCKR      = &Charset{"EUC-KR", []string{"EUC_KR"}, 8, korean.EUCKR}
)

var nameToCharset map[string]*Charset

func init() {
	nameToCharset = make(map[string]*Charset)

	all := []*Charset{
		UTF16, UTF8, CP437, ISO8859_1, ISO8859_2, ISO8859_3, ISO8859_4,
		ISO8859_5, ISO8859_6, ISO8859_7, ISO8859_8, ISO8859_9, ISO8859_10,
		ISO8859_13, ISO8859_14, ISO8859_15, ISO8859_16, Cp1250, Cp1251,
		Cp1252, Cp1256, SJIS, GB18030, Big5, EUCKR,
	}
	for _, cs := range all {
		nameToCharset[strings.ToLower(cs.Name)] = cs
		for _, alias := range cs.Aliases {
			nameToCharset[strings.ToLower(alias)] = cs
		}
	}
}

// Lookup returns the charset for the given name. The empty name selects
// Default. Names outside the built-in table are resolved through the IANA
// registry.
func Lookup(name string) (*Charset, error) {
	if name == "" {
		return UTF16, nil
	}
	if cs, ok := nameToCharset[strings.ToLower(name)]; ok {
		return cs, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnsupported)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Charset{Name: canonical, UnitBits: 8, Encoding: enc}, nil
}

// Codes encodes contents and returns its character codes in order.
func (cs *Charset) Codes(contents string) ([]uint32, error) {
	raw, err := cs.Encoding.NewEncoder().String(contents)
	if err != nil {
		return nil, fmt.Errorf("charset %s: %w", cs.Name, err)
	}
	if cs.UnitBits == 16 {
		codes := make([]uint32, 0, len(raw)/2)
		for i := 0; i+1 < len(raw); i += 2 {
			codes = append(codes, uint32(raw[i])<<8|uint32(raw[i+1]))
		}
		return codes, nil
	}
	codes := make([]uint32, len(raw))
	for i := 0; i < len(raw); i++ {
		codes[i] = uint32(raw[i])
	}
	return codes, nil
}

// Codes is a convenience wrapper around Lookup and Charset.Codes.
func Codes(contents, name string) ([]uint32, error) {
	cs, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return cs.Codes(contents)
}
