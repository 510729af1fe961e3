// Package driver wires vendor API adapters behind the domain.HealthDriver
// contract and exposes them as a lookup registry keyed by source.
package driver

import (
	"sort"

	"github.com/trainwell/vitals-api/internal/domain"
)

// Registry resolves a vendor source to its driver.
type Registry struct {
	drivers map[domain.Source]domain.HealthDriver
}

// NewRegistry builds a registry from the given drivers.
// A later driver with the same source replaces an earlier one.
func NewRegistry(drivers ...domain.HealthDriver) *Registry {
	m := make(map[domain.Source]domain.HealthDriver, len(drivers))
	for _, d := range drivers {
		if d == nil {
			continue
		}
		m[d.Name()] = d
	}
	return &Registry{drivers: m}
}

// Get returns the driver registered for the source.
// Returns domain.ErrUnknownSource when no driver is registered.
func (r *Registry) Get(source domain.Source) (domain.HealthDriver, error) {
	d, ok := r.drivers[source]
	if !ok {
		return nil, domain.ErrUnknownSource
	}
	return d, nil
}

// Sources lists the registered sources in stable order.
func (r *Registry) Sources() []domain.Source {
	out := make([]domain.Source, 0, len(r.drivers))
	for s := range r.drivers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
