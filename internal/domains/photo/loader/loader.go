package loader

import (
	"fmt"
	"regexp"
	"slices"

	"frs/config"
)

var mimeTypePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9!#$&^_.+-]*/[a-z0-9][a-z0-9!#$&^_.+-]*$`)

// File is anything carrying a declared media type.
type File interface {
	Type() string
}

type Resolver interface {
	// ImageTypes returns the accepted MIME types in configured order.
	ImageTypes() []string
	// Loader returns the decoder for file when its declared type is accepted, nil otherwise.
	Loader(file File) Loader
}

type resolverImpl struct {
	types   []string
	loaders map[string]Loader
}

// New builds a resolver over an immutable copy of types. Every entry must be a
// lowercase type/subtype with a registered decoder.
func New(types []string) (Resolver, error) {
	if len(types) == 0 {
		types = DefaultTypes
	}

	r := &resolverImpl{
		types:   make([]string, 0, len(types)),
		loaders: make(map[string]Loader, len(types)),
	}

	for _, t := range types {
		if !mimeTypePattern.MatchString(t) {
			return nil, fmt.Errorf("invalid image type %q", t)
		}

		decode, ok := codecs[t]
		if !ok {
			return nil, fmt.Errorf("no decoder registered for image type %q", t)
		}

		if _, dup := r.loaders[t]; dup {
			continue
		}

		r.types = append(r.types, t)
		r.loaders[t] = decode
	}

	return r, nil
}

func (r *resolverImpl) ImageTypes() []string {
	return slices.Clone(r.types)
}

func (r *resolverImpl) Loader(file File) Loader {
	if file == nil {
		return nil
	}

	return r.loaders[file.Type()]
}

// NewFromConfig builds the resolver for the configured accepted set.
func NewFromConfig(cfg *config.Config) (Resolver, error) {
	return New(cfg.Photo.AcceptedTypes)
}
