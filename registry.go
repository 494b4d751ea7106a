package translate

import (
	"github.com/wavescope/translate/errors"
)

// Registry holds the host's translators, keyed by name. The first translator
// registered becomes the default. Registration happens during host startup;
// lookups after that are read-only and safe for concurrent use.
type Registry struct {
	byName map[string]Translator
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Translator)}
}

// Register adds a translator. Nil translators and duplicate names are
// rejected so a misconfigured host fails at startup rather than mid-render.
func (r *Registry) Register(t Translator) error {
	if t == nil {
		return errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
			Detail("nil translator").
			Build()
	}
	name := t.Name()
	if name == "" {
		return errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
			Detail("translator has empty name").
			Build()
	}
	if _, exists := r.byName[name]; exists {
		return errors.DuplicateTranslator(name)
	}
	r.byName[name] = t
	r.order = append(r.order, name)
	return nil
}

// Get returns the translator registered under name.
func (r *Registry) Get(name string) (Translator, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, errors.TranslatorNotFound(name)
	}
	return t, nil
}

// Default returns the first registered translator, or nil when the registry
// is empty.
func (r *Registry) Default() Translator {
	if len(r.order) == 0 {
		return nil
	}
	return r.byName[r.order[0]]
}

// Names lists registered translator names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of registered translators.
func (r *Registry) Len() int { return len(r.order) }
