package xlevel

import (
	"runtime"
	"strings"
)

// Caller identifies the code that issued a log call.
type Caller struct {
	Type   string
	Method string
}

// Prefix renders "[Type.Method] ", or "" for the zero Caller.
func (c Caller) Prefix() string {
	if c.Type == "" && c.Method == "" {
		return ""
	}
	if c.Type == "" {
		return "[" + c.Method + "] "
	}
	return "[" + c.Type + "." + c.Method + "] "
}

// callerAt resolves the log call site. skip is the number of frames between
// the call site and callerAt's caller.
func callerAt(skip int) Caller {
	var pcs [1]uintptr
	// CallersFrames keeps inlined frames distinct, FuncForPC would not.
	if runtime.Callers(skip+3, pcs[:]) == 0 {
		return Caller{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.Function == "" {
		return Caller{}
	}
	return parseFuncName(frame.Function)
}

// parseFuncName splits a runtime symbol into a declaring type and a method.
//
//	example.com/app/store.(*DB).Get       -> DB.Get
//	example.com/app/store.Cache[...].Put  -> Cache.Put
//	example.com/app/store.Open            -> store.Open
//	example.com/app/store.Open.func1      -> store.Open
//	example.com/app/store.(*DB).Get.func2 -> DB.Get
func parseFuncName(name string) Caller {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	pkg, rest, ok := strings.Cut(name, ".")
	if !ok {
		return Caller{Method: name}
	}
	rest = stripTypeParams(rest)
	first, tail, _ := strings.Cut(rest, ".")
	second, _, _ := strings.Cut(tail, ".")

	if strings.HasPrefix(first, "(") {
		first = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(first, "("), "*"), ")")
		return Caller{Type: first, Method: second}
	}
	if second == "" || isClosure(second) {
		return Caller{Type: pkg, Method: first}
	}
	return Caller{Type: first, Method: second}
}

func isClosure(s string) bool {
	if !strings.HasPrefix(s, "func") || len(s) == len("func") {
		return false
	}
	for _, r := range s[len("func"):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripTypeParams(s string) string {
	for {
		i := strings.IndexByte(s, '[')
		if i < 0 {
			return s
		}
		j := strings.IndexByte(s[i:], ']')
		if j < 0 {
			return s[:i]
		}
		s = s[:i] + s[i+j+1:]
	}
}
