package describe

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are not safe for concurrent use so keep a pool
var titlePool = sync.Pool{
	New: func() any { c := cases.Title(language.Und); return &c },
}

// Capitalize title-cases the first character of s and leaves the rest untouched
// The empty string is returned as is
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	c := titlePool.Get().(*cases.Caser)
	head := c.String(s[:size])
	c.Reset()
	titlePool.Put(c)

	return head + s[size:]
}
