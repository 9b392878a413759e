package types

// The primitive universe: built-in base types every TypeCtx starts with.
// Primitives are leaves of the subtype lattice; their reifications carry
// no arguments, which keeps argument tuples homogeneous where a
// primitive stands in for a class argument.
const (
	StringTypeName = "string"
	IntTypeName    = "int"
	FloatTypeName  = "float"
	BoolTypeName   = "bool"
)

func universe() []*Declaration {
	names := []typeName{StringTypeName, IntTypeName, FloatTypeName, BoolTypeName}
	decls := make([]*Declaration, 0, len(names))
	for _, name := range names {
		decls = append(decls, &Declaration{Name: name, Kind: KindPrimitive})
	}
	return decls
}
