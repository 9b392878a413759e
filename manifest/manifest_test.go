package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/reify/manifest"
	"github.com/cottand/reify/reify"
	"github.com/cottand/reify/types"
)

func TestParseRef(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"Box", "Box"},
		{"Box<Cat>", "Box<Cat>"},
		{"Entry<int, string>", "Entry<int, string>"},
		{"Entry<Box<Cat>, Entry<int, string>>", "Entry<Box<Cat>, Entry<int, string>>"},
		{"  Box < Cat > ", "Box<Cat>"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			expr, err := manifest.ParseRef(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.String())
		})
	}
}

func TestParseRefErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"Box<",
		"Box<Cat",
		"Box<Cat>>",
		"Box<>",
		"<Cat>",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := manifest.ParseRef(in)
			assert.Error(t, err)
		})
	}
}

const zooManifest = `
[[declare]]
name = "Boxable"
kind = "interface"

[[declare]]
name = "Hat"
kind = "class"
implements = ["Boxable"]

[[declare]]
name = "Box"
kind = "class"

[[declare.param]]
name = "T"
bound = "Boxable"

[[declare.formal]]
name = "item"
type = "T"

[[declare]]
name = "Greeter"
kind = "class"

[[declare.method]]
name = "greet"
kind = "method"

[[declare.method.param]]
name = "T"
bound = "Boxable"
`

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoo.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	decls, err := manifest.Load(writeManifest(t, zooManifest))
	require.NoError(t, err)
	require.Len(t, decls, 4)

	box := decls[2]
	assert.Equal(t, "Box", box.Name)
	assert.Equal(t, types.KindClass, box.Kind)
	require.Len(t, box.Params, 1)
	assert.Equal(t, "T", box.Params[0].Name)
	require.NotNil(t, box.Params[0].Bound)
	assert.Equal(t, "Boxable", box.Params[0].Bound.String())
	require.Len(t, box.Formals, 1)
	assert.Equal(t, "T", box.Formals[0].Type.String())

	greeter := decls[3]
	require.Len(t, greeter.Methods, 1)
	assert.Equal(t, types.KindMethod, greeter.Methods[0].Kind)
}

func TestLoadManifestIntoEngine(t *testing.T) {
	decls, err := manifest.Load(writeManifest(t, zooManifest))
	require.NoError(t, err)

	engine := reify.NewEngine(nil)
	for _, decl := range decls {
		require.NoError(t, engine.LoadDeclaration(decl), "loading %s", decl.Name)
	}

	hat, err := engine.Construct("Hat", nil, nil)
	require.NoError(t, err)
	box, err := engine.Construct("Box", nil, []types.Value{hat})
	require.NoError(t, err)
	assert.Equal(t, "Box<Hat>", box.Type().String())
}

func TestLoadManifestBadKind(t *testing.T) {
	_, err := manifest.Load(writeManifest(t, `
[[declare]]
name = "Odd"
kind = "enum"
`))
	assert.Error(t, err)
}
