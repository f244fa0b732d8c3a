package cookie

import "net/http"

// Options are the cookie attributes applied on write.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// Option overrides a single cookie attribute.
type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) { o.Path = path }
}

func WithDomain(domain string) Option {
	return func(o *Options) { o.Domain = domain }
}

// WithMaxAge sets the cookie lifetime in seconds; negative values delete
// the cookie.
func WithMaxAge(seconds int) Option {
	return func(o *Options) { o.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(o *Options) { o.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) { o.HTTPOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) { o.SameSite = sameSite }
}

// applyOptions copies base and layers opts on top, leaving base untouched.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
