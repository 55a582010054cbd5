// Package loose holds JSON value wrappers that accept any JSON input
// and defer interpretation until the value is read.
//
// Decoding into these types never fails, so a single malformed field
// cannot reject the enclosing document.
package loose

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var null = []byte("null")

func keep(dst *json.RawMessage, b []byte) {
	*dst = append((*dst)[:0], b...)
}

func kind(raw json.RawMessage) byte {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

// A Number is a JSON number or a numeric string.
type Number struct {
	raw json.RawMessage
}

func NumberOf(v float64) Number {
	return Number{json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

// NumericString keeps s as a JSON string, the way form input arrives.
func NumericString(s string) Number {
	b, _ := json.Marshal(s)
	return Number{b}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	keep(&n.raw, b)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if len(n.raw) == 0 {
		return null, nil
	}
	return n.raw, nil
}

func (n Number) IsZero() bool {
	return len(n.raw) == 0
}

// Float64 reports the finite numeric value and whether there was one.
// Strings are trimmed before parsing; anything else is not a number.
func (n Number) Float64() (float64, bool) {
	var text string
	switch kind(n.raw) {
	case '"':
		var s string
		if err := json.Unmarshal(n.raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(bytes.TrimSpace(n.raw))
	default:
		return 0, false
	}

	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// OrZero returns the finite value or 0.
func (n Number) OrZero() float64 {
	v, _ := n.Float64()
	return v
}

// A String is a JSON string; other JSON values read as empty.
type String struct {
	raw json.RawMessage
}

func StringOf(s string) String {
	b, _ := json.Marshal(s)
	return String{b}
}

func (s *String) UnmarshalJSON(b []byte) error {
	keep(&s.raw, b)
	return nil
}

func (s String) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return null, nil
	}
	return s.raw, nil
}

func (s String) IsZero() bool {
	return len(s.raw) == 0
}

func (s String) String() string {
	if kind(s.raw) != '"' {
		return ""
	}
	var v string
	if err := json.Unmarshal(s.raw, &v); err != nil {
		return ""
	}
	return v
}

// A Strings is a JSON array of strings.
type Strings struct {
	raw json.RawMessage
}

func StringsOf(vs []string) Strings {
	if vs == nil {
		vs = []string{}
	}
	b, _ := json.Marshal(vs)
	return Strings{b}
}

func (s *Strings) UnmarshalJSON(b []byte) error {
	keep(&s.raw, b)
	return nil
}

func (s Strings) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return null, nil
	}
	return s.raw, nil
}

func (s Strings) IsZero() bool {
	return len(s.raw) == 0
}

// Slice returns the elements and whether the value was an array at all.
// Strings come back verbatim, other values as their compact JSON text
// (38 becomes "38"). Nulls are skipped.
func (s Strings) Slice() ([]string, bool) {
	if kind(s.raw) != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(s.raw, &elems); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		switch kind(e) {
		case 'n':
			continue
		case '"':
			var v string
			if err := json.Unmarshal(e, &v); err == nil {
				out = append(out, v)
			}
		default:
			var buf bytes.Buffer
			if err := json.Compact(&buf, e); err == nil {
				out = append(out, buf.String())
			}
		}
	}
	return out, true
}
