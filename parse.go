// parse.go
package power

import (
	"math/big"
	"strings"
)

// ParseInt parses a base-10 integer token. An optional sign and
// surrounding whitespace are allowed, as are single underscores
// between digits ("1_000").
func ParseInt(s string) (*big.Int, error) {
	invalid := &Error{Op: "parse", Arg: s, Err: ErrInvalidInteger}

	t := strings.TrimSpace(s)
	sign := ""
	if t != "" && (t[0] == '+' || t[0] == '-') {
		sign, t = t[:1], t[1:]
	}
	if t == "" {
		return nil, invalid
	}

	for i := 0; i < len(t); i++ {
		c := t[i]
		if c == '_' {
			if i == 0 || i == len(t)-1 || t[i-1] == '_' {
				return nil, invalid
			}
			continue
		}
		if c < '0' || c > '9' {
			return nil, invalid
		}
	}

	n, ok := new(big.Int).SetString(sign+strings.ReplaceAll(t, "_", ""), 10)
	if !ok {
		return nil, invalid
	}
	return n, nil
}
