package registry

import (
	"errors"
	"github.com/saylorsolutions/slots/assert"
)

var (
	ErrAsymmetric = errors.New("asymmetric connection")
)

// Verify checks that every tracked connection in the given registries has a matching entry on the far side.
// Every violation is reported in the returned error, which wraps [ErrAsymmetric].
func Verify(registries ...*Registry) error {
	errs := assert.CollectErrors()
	for _, r := range registries {
		for _, c := range r.Connections() {
			if c.Counterpart == nil {
				errs.Addf("%w: %s has no counterpart for %s", ErrAsymmetric, r, c.Binding.Key)
				continue
			}
			if c.Counterpart == r {
				if !c.Invoke {
					errs.Addf("%w: %s has a back-reference to itself for %s", ErrAsymmetric, r, c.Binding.Key)
				}
				continue
			}
			if !c.Counterpart.hasMirror(c, r) {
				errs.Addf("%w: %s has %s (invoke=%t) but %s has no matching entry", ErrAsymmetric, r, c.Binding.Key, c.Invoke, c.Counterpart)
			}
		}
	}
	return errs.Result()
}

func (r *Registry) hasMirror(c Connection, owner *Registry) bool {
	for _, far := range r.Connections() {
		if far.matches(c.Binding.Key, owner) && far.Invoke != c.Invoke {
			return true
		}
	}
	return false
}
