package encode

type options struct {
	colors *Colors
	indent int
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		colors: PlainColors(),
		indent: 2,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColors renders with the given color scheme; see NewColors.
func WithColors(c *Colors) Option {
	return func(o *options) {
		o.colors = c
	}
}

// WithIndent sets the indent width, default 2.
func WithIndent(n int) Option {
	return func(o *options) {
		o.indent = n
	}
}
