package resolver

// WithSeparator sets the string separating the parts of a field path. An
// empty separator disables path walking.
func WithSeparator(sep string) Option {
	return func(r *Resolver) {
		r.separator = sep
	}
}

// WithPipe sets the string splitting candidate values into multiple values.
// An empty pipe disables splitting.
func WithPipe(pipe string) Option {
	return func(r *Resolver) {
		r.pipe = pipe
	}
}

// Option configures resolver behavior through the functional options pattern.
type Option func(*Resolver)
