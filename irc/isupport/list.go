// Copyright (c) 2016 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package isupport tracks the RPL_ISUPPORT (005) tokens a server advertises.
package isupport

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// parameter limit of a single 005 line: <nick> [up to 13 tokens] <trailing>
	maxParameters = 13

	defaultChanTypes = "#&"
	defaultNickLen   = 9
)

// List holds the ISUPPORT tokens advertised so far, keyed by token name.
type List struct {
	Tokens map[string]string
}

// NewList returns a new List
func NewList() *List {
	var il List
	il.Initialize()
	return &il
}

func (il *List) Initialize() {
	il.Tokens = make(map[string]string)
}

// Add records a token with a value
func (il *List) Add(name string, value string) {
	il.Tokens[name] = value
}

// AddNoValue records a token that does not have a value
func (il *List) AddNoValue(name string) {
	il.Tokens[name] = ""
}

// Remove forgets a token, as requested by a "-TOKEN" parameter.
func (il *List) Remove(name string) {
	delete(il.Tokens, name)
}

// Contains returns whether the server advertised a token
func (il *List) Contains(name string) bool {
	_, ok := il.Tokens[name]
	return ok
}

// Get returns the value of a token.
func (il *List) Get(name string) (value string, ok bool) {
	value, ok = il.Tokens[name]
	return
}

// Apply updates the list from the middle parameters of one RPL_ISUPPORT
// reply (the target and the human-readable trailing excluded). Invalid
// tokens are skipped and reported in the returned error; the valid ones
// are still applied.
func (il *List) Apply(params []string) (err error) {
	if il.Tokens == nil {
		il.Initialize()
	}
	if len(params) > maxParameters {
		err = fmt.Errorf("too many isupport tokens in one reply: %d", len(params))
	}
	for _, token := range params {
		if tokenErr := validateToken(token); tokenErr != nil {
			err = tokenErr
			continue
		}
		if strings.HasPrefix(token, "-") {
			il.Remove(token[1:])
			continue
		}
		name, value, found := strings.Cut(token, "=")
		if !found {
			il.AddNoValue(name)
			continue
		}
		il.Add(name, unescapeValue(value))
	}
	return
}

// String renders the list the way a server would advertise it.
func (il *List) String() string {
	tokens := make([]string, 0, len(il.Tokens))
	for name, value := range il.Tokens {
		tokens = append(tokens, getTokenString(name, value))
	}
	// sorted so the output is stable
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

// ChanTypes returns the channel prefix characters (CHANTYPES).
func (il *List) ChanTypes() string {
	if value, ok := il.Get("CHANTYPES"); ok {
		return value
	}
	return defaultChanTypes
}

// IsChannel reports whether target is a channel name on this server.
func (il *List) IsChannel(target string) bool {
	return target != "" && strings.IndexByte(il.ChanTypes(), target[0]) != -1
}

// NickLen returns the maximum nickname length (NICKLEN).
func (il *List) NickLen() int {
	if value, ok := il.Get("NICKLEN"); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultNickLen
}

// getTokenString gets the appropriate string for a token+value.
func getTokenString(name string, value string) string {
	if len(value) == 0 {
		return name
	}

	return fmt.Sprintf("%s=%s", name, value)
}

func validateToken(token string) error {
	if len(token) == 0 || token[0] == ':' || strings.Contains(token, " ") {
		return fmt.Errorf("bad isupport token (cannot be sent as IRC parameter): `%s`", token)
	}

	if strings.ContainsAny(token, "\n\r\x00") {
		return fmt.Errorf("bad isupport token (contains forbidden octets)")
	}

	if token == "-" || token[0] == '=' {
		return fmt.Errorf("bad isupport token (no name): `%s`", token)
	}

	return nil
}

// unescapeValue decodes the \xHH escapes servers use for bytes that
// cannot appear in a token value.
func unescapeValue(value string) string {
	if !strings.Contains(value, `\x`) {
		return value
	}
	var buf strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+4 <= len(value) && value[i+1] == 'x' {
			if b, err := strconv.ParseUint(value[i+2:i+4], 16, 8); err == nil {
				buf.WriteByte(byte(b))
				i += 3
				continue
			}
		}
		buf.WriteByte(value[i])
	}
	return buf.String()
}
