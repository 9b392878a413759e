// Package manifest reads declaration manifests for the reify CLI. It
// plays the collaborator role of a surface syntax: the engine itself
// only ever sees the structured declarations this package produces.
package manifest

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/cottand/reify/internal/log"
	"github.com/cottand/reify/types"
)

type tomlFile struct {
	Declare []tomlDecl `toml:"declare"`
}

type tomlDecl struct {
	Name       string       `toml:"name"`
	Kind       string       `toml:"kind"`
	Extends    string       `toml:"extends"`
	Implements []string     `toml:"implements"`
	Params     []tomlParam  `toml:"param"`
	Formals    []tomlFormal `toml:"formal"`
	Methods    []tomlDecl   `toml:"method"`
}

type tomlParam struct {
	Name    string `toml:"name"`
	Bound   string `toml:"bound"`
	Default string `toml:"default"`
}

type tomlFormal struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Load reads a TOML manifest and converts it to engine declarations, in
// file order.
func Load(path string) ([]*types.Declaration, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest at %s", path)
	}
	file := &tomlFile{}
	if err := toml.Unmarshal(buff, file); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest at %s", path)
	}
	decls := make([]*types.Declaration, 0, len(file.Declare))
	for _, d := range file.Declare {
		decl, err := d.toDeclaration()
		if err != nil {
			return nil, errors.Wrapf(err, "declaration '%s'", d.Name)
		}
		decls = append(decls, decl)
	}
	log.DefaultLogger.Debug("manifest loaded", "section", "manifest", "path", path, "declarations", len(decls))
	return decls, nil
}

func (d tomlDecl) toDeclaration() (*types.Declaration, error) {
	kind, err := kindOf(d.Kind)
	if err != nil {
		return nil, err
	}
	decl := &types.Declaration{
		Name: d.Name,
		Kind: kind,
	}
	if d.Extends != "" {
		extends, err := ParseRef(d.Extends)
		if err != nil {
			return nil, errors.Wrap(err, "extends")
		}
		decl.Extends = &extends
	}
	for _, impl := range d.Implements {
		expr, err := ParseRef(impl)
		if err != nil {
			return nil, errors.Wrap(err, "implements")
		}
		decl.Implements = append(decl.Implements, expr)
	}
	for _, p := range d.Params {
		param := types.TypeParam{Name: p.Name}
		if p.Bound != "" {
			bound, err := ParseRef(p.Bound)
			if err != nil {
				return nil, errors.Wrapf(err, "bound of '%s'", p.Name)
			}
			param.Bound = &bound
		}
		if p.Default != "" {
			def, err := ParseRef(p.Default)
			if err != nil {
				return nil, errors.Wrapf(err, "default of '%s'", p.Name)
			}
			param.Default = &def
		}
		decl.Params = append(decl.Params, param)
	}
	for _, f := range d.Formals {
		typ, err := ParseRef(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "formal '%s'", f.Name)
		}
		decl.Formals = append(decl.Formals, types.Formal{Name: f.Name, Type: typ})
	}
	for _, m := range d.Methods {
		method, err := m.toDeclaration()
		if err != nil {
			return nil, errors.Wrapf(err, "method '%s'", m.Name)
		}
		if method.Kind != types.KindMethod {
			return nil, errors.Errorf("method '%s' declares kind '%s'", m.Name, m.Kind)
		}
		decl.Methods = append(decl.Methods, method)
	}
	return decl, nil
}

func kindOf(s string) (types.DeclKind, error) {
	switch s {
	case "class", "":
		return types.KindClass, nil
	case "interface":
		return types.KindInterface, nil
	case "trait":
		return types.KindTrait, nil
	case "function":
		return types.KindFunction, nil
	case "method":
		return types.KindMethod, nil
	default:
		return 0, errors.Errorf("unknown declaration kind '%s'", s)
	}
}
