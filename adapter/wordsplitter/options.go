package wordsplitter

// WithMinLength drops words shorter than l runes.
func WithMinLength(l int) Option {
	return func(s *Splitter) {
		s.minLength = max(1, l)
	}
}

// Option configures splitter behavior through the functional options pattern.
type Option func(*Splitter)
