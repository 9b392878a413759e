package types

// Value is a runtime value of the host object system as the engine sees
// it: the only question the engine ever asks a value is its runtime
// type. Null answers with none.
type Value interface {
	TypeOf(ctx *TypeCtx) (*Reified, bool)
}

type Null struct{}

func (Null) TypeOf(*TypeCtx) (*Reified, bool) { return nil, false }

type Str string

func (Str) TypeOf(ctx *TypeCtx) (*Reified, bool) { return ctx.Primitive(StringTypeName), true }

type Int int64

func (Int) TypeOf(ctx *TypeCtx) (*Reified, bool) { return ctx.Primitive(IntTypeName), true }

type Float float64

func (Float) TypeOf(ctx *TypeCtx) (*Reified, bool) { return ctx.Primitive(FloatTypeName), true }

type Bool bool

func (Bool) TypeOf(ctx *TypeCtx) (*Reified, bool) { return ctx.Primitive(BoolTypeName), true }

// Primitive returns the canonical reification of a universe primitive.
func (ctx *TypeCtx) Primitive(name string) *Reified {
	decl, ok := ctx.lookup(name)
	if !ok || decl.Kind != KindPrimitive {
		panic("unknown primitive type: " + name)
	}
	return ctx.intern(decl, nil)
}

// Instance is the host's ordinary object plus the one attribute the
// engine adds: a reference to its Reified, set exactly once at
// construction and read-only thereafter. It is nil for instances of
// declarations the engine never saw.
type Instance struct {
	reified *Reified
	Fields  map[string]Value
}

func (i *Instance) Type() *Reified { return i.reified }

func (i *Instance) TypeOf(*TypeCtx) (*Reified, bool) {
	return i.reified, i.reified != nil
}

// runtimeTypeOf is TypeOf hardened against nil interface values, which
// the engine treats the same as Null.
func runtimeTypeOf(ctx *TypeCtx, v Value) (*Reified, bool) {
	if v == nil {
		return nil, false
	}
	return v.TypeOf(ctx)
}
