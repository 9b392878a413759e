package manifest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cottand/reify/types"
)

// ParseRef reads a type reference of the form Name or Name<Arg, ...>,
// with arguments nesting arbitrarily. This tiny reader exists so
// manifests can write bounds and supertypes the way host code would;
// it is not the host's grammar.
func ParseRef(s string) (types.TypeExpr, error) {
	expr, rest, err := parseRef(strings.TrimSpace(s))
	if err != nil {
		return types.TypeExpr{}, err
	}
	if rest != "" {
		return types.TypeExpr{}, errors.Errorf("trailing input %q in type reference %q", rest, s)
	}
	return expr, nil
}

func parseRef(s string) (types.TypeExpr, string, error) {
	name, rest := splitName(s)
	if name == "" {
		return types.TypeExpr{}, "", errors.Errorf("expected a type name at %q", s)
	}
	expr := types.TypeExpr{Base: name}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "<") {
		return expr, rest, nil
	}
	rest = rest[1:]
	for {
		arg, remaining, err := parseRef(strings.TrimSpace(rest))
		if err != nil {
			return types.TypeExpr{}, "", err
		}
		expr.Args = append(expr.Args, arg)
		rest = strings.TrimSpace(remaining)
		switch {
		case strings.HasPrefix(rest, ","):
			rest = rest[1:]
		case strings.HasPrefix(rest, ">"):
			return expr, rest[1:], nil
		default:
			return types.TypeExpr{}, "", errors.Errorf("expected ',' or '>' at %q", rest)
		}
	}
}

func splitName(s string) (string, string) {
	for i, r := range s {
		if r == '<' || r == '>' || r == ',' || r == ' ' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
