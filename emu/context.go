package emu

// Context binds one register file to one instruction library for the
// duration of a single transcribed-routine call. Contexts are never
// reused or shared: each call constructs a fresh one, optionally
// seeded with a partial initial state.
type Context struct {
	// Regs is the register file owned by this context.
	Regs *RegFile

	// Ops is the instruction library bound to Regs.
	Ops *Ops
}

// ContextOption is a functional option for seeding a Context.
type ContextOption func(*Context)

// WithData seeds data register Dn with value.
func WithData(n int, value uint32) ContextOption {
	return func(c *Context) {
		c.Regs.D[n] = value
	}
}

// WithAddr seeds address register An with value.
func WithAddr(n int, value uint32) ContextOption {
	return func(c *Context) {
		c.Regs.A[n] = value
	}
}

// WithZero seeds the zero flag.
func WithZero(z bool) ContextOption {
	return func(c *Context) {
		c.Regs.Z = z
	}
}

// WithNegative seeds the negative flag.
func WithNegative(n bool) ContextOption {
	return func(c *Context) {
		c.Regs.N = n
	}
}

// WithCarry seeds the carry flag.
func WithCarry(cy bool) ContextOption {
	return func(c *Context) {
		c.Regs.C = cy
	}
}

// WithOverflow seeds the overflow flag.
func WithOverflow(v bool) ContextOption {
	return func(c *Context) {
		c.Regs.V = v
	}
}

// NewContext creates a zero-initialized register file, applies the
// seed options, and binds a fresh instruction library to it.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{Regs: NewRegFile()}
	for _, opt := range opts {
		opt(c)
	}
	c.Ops = NewOps(c.Regs)
	return c
}

// D reads data register Dn.
func (c *Context) D(n int) uint32 {
	return c.Regs.D[n]
}

// SetD writes data register Dn.
func (c *Context) SetD(n int, value uint32) {
	c.Regs.D[n] = value
}

// A reads address register An.
func (c *Context) A(n int) uint32 {
	return c.Regs.A[n]
}

// SetA writes address register An.
func (c *Context) SetA(n int, value uint32) {
	c.Regs.A[n] = value
}

// Get resolves a register by name; see RegFile.Get.
func (c *Context) Get(name string) (uint32, error) {
	return c.Regs.Get(name)
}

// Set resolves a register by name; see RegFile.Set.
func (c *Context) Set(name string, value uint32) error {
	return c.Regs.Set(name, value)
}
