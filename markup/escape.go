package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// The escape table covers code points below tableSize; everything at or
// above it passes through unescaped. All five special characters sit
// below this boundary ('>' is 62), and every byte of a multi-byte UTF-8
// sequence is >= 0x80, so a byte scan decides exactly as a code-point
// scan would.
const tableSize = 63

// escRepl maps a special code point to its entity replacement; escDelta
// holds the extra bytes that replacement adds. Both are written once
// before main and read-only afterwards.
var (
	escRepl  [tableSize]string
	escDelta [tableSize]int
)

func init() {
	escRepl['"'] = "&#34;"
	escRepl['\''] = "&#39;"
	escRepl['&'] = "&amp;"
	escRepl['<'] = "&lt;"
	escRepl['>'] = "&gt;"
	for c, r := range escRepl {
		if r != "" {
			escDelta[c] = len(r) - 1
		}
	}
}

// EscapeString replaces &, < and > (plus " and ' when quotes is true) in
// s with their HTML entity sequences. When s needs no replacements it is
// returned as-is, without allocating; callers may rely on that identity.
func EscapeString(s string, quotes bool) string {
	// Measure pass: total growth and number of substitution sites under
	// the quotes policy.
	delta, count := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < tableSize && (quotes || (c != '"' && c != '\'')) {
			if d := escDelta[c]; d > 0 {
				delta += d
				count++
			}
		}
	}

	if count == 0 {
		return s
	}

	// Build pass: one exact-size buffer, then verbatim spans and
	// replacements site by site, tail last.
	var b strings.Builder
	b.Grow(len(s) + delta)
	start := 0
	for i := 0; i < len(s) && count > 0; i++ {
		c := s[i]
		if c < tableSize && (quotes || (c != '"' && c != '\'')) {
			if r := escRepl[c]; r != "" {
				b.WriteString(s[start:i])
				b.WriteString(r)
				start = i + 1
				count--
			}
		}
	}
	b.WriteString(s[start:])
	return b.String()
}

// Escape converts text of any type to Markup, escaping &, < and > plus
// " and ' when quotes is true.
//
// Markup values pass through unchanged, so escaping twice is a no-op.
// Integers, floats, booleans and nil cannot contain escapable characters
// and are formatted without scanning. Values implementing HTMLer render
// themselves; their result is returned as-is. Everything else is coerced
// to a string and escaped. A panic from a String, Error or HTML method
// propagates to the caller unhandled.
func Escape(text any, quotes bool) Markup {
	switch v := text.(type) {
	case Markup:
		return v
	case nil:
		return "nil"
	case bool:
		return Markup(strconv.FormatBool(v))
	case int:
		return Markup(strconv.Itoa(v))
	case int8:
		return Markup(strconv.FormatInt(int64(v), 10))
	case int16:
		return Markup(strconv.FormatInt(int64(v), 10))
	case int32:
		return Markup(strconv.FormatInt(int64(v), 10))
	case int64:
		return Markup(strconv.FormatInt(v, 10))
	case uint:
		return Markup(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return Markup(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return Markup(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return Markup(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Markup(strconv.FormatUint(v, 10))
	case uintptr:
		return Markup(strconv.FormatUint(uint64(v), 10))
	case float32:
		return Markup(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return Markup(strconv.FormatFloat(v, 'g', -1, 64))
	}

	if h, ok := text.(HTMLer); ok {
		return h.HTML()
	}

	switch v := text.(type) {
	case string:
		return Markup(EscapeString(v, quotes))
	case []byte:
		return Markup(EscapeString(string(v), quotes))
	case fmt.Stringer:
		return Markup(EscapeString(v.String(), quotes))
	case error:
		return Markup(EscapeString(v.Error(), quotes))
	default:
		return Markup(EscapeString(fmt.Sprint(text), quotes))
	}
}
