package dsl

import (
	rawdec "github.com/reoring/rawdec"
)

// Bundle is a configured decoder set. Every decoder built from the same
// Bundle shares its Config by reference; the Bundle itself is immutable.
type Bundle struct {
	cfg rawdec.Config
}

// Configure builds a decoder bundle with the given error policy. With no
// arguments the default policy applies: validation failures surface as
// Issues errors returned from the decode call. Supplying a Config with a
// non-nil ErrorCallback makes failures non-fatal: the callback observes each
// one and decoding yields the zero value (or the decoder's default).
func Configure(cfg ...rawdec.Config) *Bundle {
	var c rawdec.Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return &Bundle{cfg: c}
}

// Config derives a freshly configured bundle from the same factories. The
// receiver is never mutated; it keeps its own policy.
func (b *Bundle) Config(cfg ...rawdec.Config) *Bundle { return Configure(cfg...) }

// CreateDecoder exposes the generic decoder factory under b's error policy,
// so consumers can define primitive-style decoder kinds without duplicating
// the default/error plumbing.
func CreateDecoder[T any](b *Bundle, sp rawdec.Spec[T]) rawdec.Factory[T] {
	return rawdec.NewDecoder(b.cfg, sp)
}
