package xlevel

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// NilMessage is logged in place of a nil message.
const NilMessage = "<nil>"

// badVerb prefixes every error annotation fmt writes into its output
// (%!d(string=x), %!(EXTRA ...), %!v(MISSING), %!(BADINDEX), ...).
const badVerb = "%!"

// FormatError reports a format string whose verbs do not match its arguments.
// Nothing is logged when it is returned.
type FormatError struct {
	Format   string
	Args     int
	Rendered string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("xlevel: format %q with %d args: %s", e.Format, e.Args, e.Rendered)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func render(msg any) string {
	switch m := msg.(type) {
	case nil:
		return NilMessage
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}

// sprintf formats like fmt.Sprintf but fails when fmt had to annotate a
// mismatch. Output without "%!" is accepted as is; otherwise the format is
// walked verb by verb, since "%!" may also come from "%%!" or from an
// argument's own rendering.
func sprintf(format string, args []any) (string, error) {
	out := fmt.Sprintf(format, args...)
	if !strings.Contains(out, badVerb) || verbsMatch(format, args) {
		return out, nil
	}
	return "", &FormatError{Format: format, Args: len(args), Rendered: out}
}

// verbsMatch parses format the way fmt does and reports whether every verb,
// star width and star precision gets an argument of an acceptable type, and
// whether every argument is consumed. Like fmt, unused arguments are allowed
// once an explicit [n] index appears.
func verbsMatch(format string, args []any) bool {
	argNum, reordered := 0, false
	end := len(format)
	for i := 0; i < end; {
		if format[i] != '%' {
			i++
			continue
		}
		i++

		spec := []byte{'%'}
		var sub []any
		for i < end && strings.IndexByte("+-# 0", format[i]) >= 0 {
			spec = append(spec, format[i])
			i++
		}

		// star consumes an integer argument for width or precision
		star := func() bool {
			if argNum >= len(args) || !isInteger(args[argNum]) {
				return false
			}
			spec = append(spec, '*')
			sub = append(sub, args[argNum])
			argNum++
			i++
			return true
		}
		digits := func() bool {
			start := i
			for i < end && isDigit(format[i]) {
				spec = append(spec, format[i])
				i++
			}
			return i > start
		}
		index := func() (bool, bool) {
			n, next, indexed, ok := argIndex(format, i, len(args))
			if indexed {
				argNum, i, reordered = n, next, true
			}
			return indexed, ok
		}

		afterIndex, ok := index()
		if !ok {
			return false
		}
		if i < end && format[i] == '*' {
			if !star() {
				return false
			}
			afterIndex = false
		} else if digits() && afterIndex {
			return false
		}

		if i+1 < end && format[i] == '.' {
			if afterIndex {
				return false
			}
			spec = append(spec, '.')
			i++
			if afterIndex, ok = index(); !ok {
				return false
			}
			if i < end && format[i] == '*' {
				if !star() {
					return false
				}
				afterIndex = false
			} else {
				digits()
			}
		}

		if !afterIndex {
			if _, ok = index(); !ok {
				return false
			}
		}
		if i >= end {
			return false
		}
		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size
		if verb == '%' {
			continue
		}
		if argNum >= len(args) {
			return false
		}
		arg := args[argNum]
		argNum++
		if wrongType(string(utf8.AppendRune(spec, verb)), verb, append(sub, arg)) {
			return false
		}
	}
	return reordered || argNum == len(args)
}

// argIndex parses an explicit "[n]" at format[i:]. ok is false for a
// malformed or out of range index.
func argIndex(format string, i, numArgs int) (argNum, next int, indexed, ok bool) {
	if i >= len(format) || format[i] != '[' {
		return 0, i, false, true
	}
	n, j := 0, i+1
	for ; j < len(format) && isDigit(format[j]); j++ {
		n = n*10 + int(format[j]-'0')
		if n > numArgs {
			return 0, i, false, false
		}
	}
	if j == i+1 || j >= len(format) || format[j] != ']' || n < 1 {
		return 0, i, false, false
	}
	return n - 1, j + 1, true, true
}

// wrongType renders one directive on its own and reports whether fmt
// rejected the argument type, e.g. "%!d(string=x)" or "%!d(<nil>)".
func wrongType(spec string, verb rune, args []any) bool {
	arg := args[len(args)-1]
	prefix := badVerb + string(verb) + "("
	if arg == nil {
		prefix += "<nil>)"
	} else {
		prefix += reflect.TypeOf(arg).String() + "="
	}
	return strings.HasPrefix(fmt.Sprintf(spec, args...), prefix)
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
