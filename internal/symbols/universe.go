package symbols

// builtinTypes are the primitive types every universe starts with.
var builtinTypes = []string{
	"void", "bool", "rune",
	"i8", "i16", "i32", "i64", "isize",
	"u8", "u16", "u32", "u64", "usize",
	"f32", "f64", "str", "error",
}

// NewUniverse creates the symbol table root with the builtin types.
func NewUniverse() *Universe {
	u := &Universe{builtins: make(map[string]*TypeSym)}
	for _, name := range builtinTypes {
		t := NewType(Public, name, Primitive, nil, nil)
		t.setParent(u)
		u.builtins[name] = t
	}
	return u
}

// Builtin returns the named builtin type symbol or nil.
func (u *Universe) Builtin(name string) *TypeSym {
	return u.builtins[name]
}

// VoidType is the resolved `void` type.
func (u *Universe) VoidType() Type {
	return &Simple{Sym: u.builtins["void"]}
}

// ErrorType is the resolved `error` type, given to error-handler bindings.
func (u *Universe) ErrorType() Type {
	return &Simple{Sym: u.builtins["error"]}
}

// AddPackage inserts a new package and returns it.
func (u *Universe) AddPackage(name string) (*Package, error) {
	pkg := NewPackage(name)
	if err := Insert(u, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Packages lists the packages in insertion order.
func (u *Universe) Packages() []*Package {
	var out []*Package
	for _, s := range u.Children() {
		if p, ok := s.(*Package); ok {
			out = append(out, p)
		}
	}
	return out
}
