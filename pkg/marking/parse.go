package marking

import (
	"fmt"
	"strings"
)

// Parse converts the textual marking notation into a Marking.
//
// The notation is "(LEVEL1/LEVEL2//COMP1/COMP2)": an optional surrounding
// paren pair, a level part and a compartment part separated by the first
// "//", and tokens within each part separated by "/". Tokens are trimmed of
// whitespace and empty tokens are dropped. The literal level token
// UNCLASSIFIED is equivalent to an empty level set. A string with only one
// of the two surrounding parens is malformed.
func Parse(s string) (Marking, error) {
	body, err := stripParens(strings.TrimSpace(s))
	if err != nil {
		return Marking{}, err
	}

	levelPart, compPart, _ := strings.Cut(body, "//")

	var level []string
	for _, tok := range strings.Split(levelPart, "/") {
		tok = strings.TrimSpace(tok)
		if tok == "" || tok == Unclassified {
			continue
		}
		level = append(level, tok)
	}

	var compartment []string
	for _, tok := range strings.Split(compPart, "/") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		compartment = append(compartment, tok)
	}

	return New(level, compartment), nil
}

// MustParse is Parse that panics on malformed input. Intended for
// package-level marking constants and tests.
func MustParse(s string) Marking {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders the marking in the textual notation. The level part renders
// as UNCLASSIFIED when empty; the "//" separator and compartment part are
// omitted when there are no compartments. The output round-trips through
// Parse to an Equal marking.
func (m Marking) String() string {
	levelPart := Unclassified
	if len(m.level) > 0 {
		levelPart = strings.Join(m.level.sorted(), "/")
	}

	if len(m.compartment) == 0 {
		return "(" + levelPart + ")"
	}
	return "(" + levelPart + "//" + strings.Join(m.compartment.sorted(), "/") + ")"
}

// MarshalText implements encoding.TextMarshaler using the textual notation.
func (m Marking) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (m *Marking) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func stripParens(s string) (string, error) {
	opened := strings.HasPrefix(s, "(")
	closed := strings.HasSuffix(s, ")")

	switch {
	case opened && closed:
		return s[1 : len(s)-1], nil
	case opened || closed:
		return "", fmt.Errorf("invalid classification marking: %s", s)
	default:
		return s, nil
	}
}
