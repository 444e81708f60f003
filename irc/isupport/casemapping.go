// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package isupport

import (
	"errors"
	"strings"

	"golang.org/x/text/secure/precis"
)

// CaseMapping names a CASEMAPPING value.
type CaseMapping string

const (
	CaseMappingASCII         CaseMapping = "ascii"
	CaseMappingRFC1459       CaseMapping = "rfc1459"
	CaseMappingRFC1459Strict CaseMapping = "rfc1459-strict"
	CaseMappingRFC8265       CaseMapping = "rfc8265"
)

var (
	errCouldNotStabilize = errors.New("Could not stabilize string while casefolding")
	errStringIsEmpty     = errors.New("String is empty")
)

// CaseMapping returns the advertised CASEMAPPING; servers that don't
// advertise one use rfc1459.
func (il *List) CaseMapping() CaseMapping {
	if value, ok := il.Get("CASEMAPPING"); ok && value != "" {
		return CaseMapping(strings.ToLower(value))
	}
	return CaseMappingRFC1459
}

// Casefold folds name under the server's casemapping.
func (il *List) Casefold(name string) (string, error) {
	return il.CaseMapping().Casefold(name)
}

// Equal reports whether two nicknames or channel names refer to the same
// entity on this server. Names that cannot be folded compare byte-for-byte.
func (il *List) Equal(a, b string) bool {
	mapping := il.CaseMapping()
	foldedA, errA := mapping.Casefold(a)
	foldedB, errB := mapping.Casefold(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return foldedA == foldedB
}

// Casefold folds str under this mapping. Unknown mappings fall back to ascii.
func (cm CaseMapping) Casefold(str string) (string, error) {
	if str == "" {
		return "", errStringIsEmpty
	}
	switch cm {
	case CaseMappingRFC8265:
		return iterateFolding(precis.UsernameCaseMapped, str)
	case CaseMappingRFC1459:
		return foldRFC1459(str, true), nil
	case CaseMappingRFC1459Strict:
		return foldRFC1459(str, false), nil
	default:
		return foldASCII(str), nil
	}
}

func foldASCII(str string) string {
	var buf strings.Builder
	buf.Grow(len(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

// []\ are the uppercase forms of {}|, and ~ of ^ unless strict
func foldRFC1459(str string, tilde bool) string {
	var buf strings.Builder
	buf.Grow(len(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		case c == '[':
			c = '{'
		case c == ']':
			c = '}'
		case c == '\\':
			c = '|'
		case c == '~' && tilde:
			c = '^'
		}
		buf.WriteByte(c)
	}
	return buf.String()
}

// Each pass of PRECIS casefolding is a composition of idempotent operations,
// but not idempotent itself, so repeat until it converges (at most four times).
func iterateFolding(profile *precis.Profile, oldStr string) (str string, err error) {
	str = oldStr
	for i := 0; i < 4; i++ {
		str, err = profile.CompareKey(str)
		if err != nil {
			return "", err
		}
		if oldStr == str {
			break
		}
		oldStr = str
	}
	if oldStr != str {
		return "", errCouldNotStabilize
	}
	return str, nil
}
