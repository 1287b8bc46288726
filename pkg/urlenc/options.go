package urlenc

// config holds encoder configuration.
type config struct {
	safe    Predicate
	exclude string
}

// Option configures an Encoder.
type Option func(*config)

// Exclude leaves the ASCII characters of chars unescaped in addition
// to the safe set. Repeated Exclude options accumulate.
//
// Example:
//
//	urlenc.NewEncoder(w, urlenc.Exclude("/")) // paths keep their slashes
func Exclude(chars string) Option {
	return func(c *config) {
		c.exclude += chars
	}
}

// Safe replaces the safe set with p. Bytes at or above 0x80 are escaped
// regardless of p.
//
// Default: Unreserved
func Safe(p Predicate) Option {
	return func(c *config) {
		if p == nil {
			p = Unreserved
		}
		c.safe = p
	}
}
