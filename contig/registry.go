// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contig

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrForeignSymbol is returned when resolving a Symbol that was issued by
	// a different Registry.
	ErrForeignSymbol = errors.New("symbol was issued by another registry")
	// ErrUnknownSymbol is returned when resolving a Symbol the registry never
	// issued (for example the zero Symbol).
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Symbol is a small identifier for an interned contig name.  Symbols issued by
// the same Registry are equal if and only if their names are equal.
type Symbol struct {
	registry uuid.UUID
	index    uint32
}

// Index returns the registry-local index of the symbol.
func (s Symbol) Index() uint32 {
	return s.index
}

// Registry interns contig names so that repeated names share one allocation
// and can be referred to by Symbol.  A Registry is safe for concurrent use and
// must be created with NewRegistry.  Symbols stay valid for the lifetime of
// the Registry that issued them.
type Registry struct {
	id uuid.UUID

	mu      sync.RWMutex
	indices map[string]uint32
	contigs []Contig
}

// NewRegistry returns an empty Registry with a fresh identity.
func NewRegistry() *Registry {
	return &Registry{
		id:      uuid.New(),
		indices: make(map[string]uint32),
	}
}

// ID returns the identity of the registry.  Symbols carry this identity.
func (r *Registry) ID() uuid.UUID {
	return r.id
}

// Intern returns the Symbol for name, adding name to the registry if it has
// not been seen before.
func (r *Registry) Intern(name string) (Symbol, error) {
	if name == "" {
		return Symbol{}, ErrEmpty
	}

	r.mu.RLock()
	index, ok := r.indices[name]
	r.mu.RUnlock()
	if ok {
		return Symbol{r.id, index}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if index, ok := r.indices[name]; ok {
		return Symbol{r.id, index}, nil
	}
	index = uint32(len(r.contigs))
	r.contigs = append(r.contigs, Contig{name})
	r.indices[name] = index
	return Symbol{r.id, index}, nil
}

// Contig interns name and returns the canonical Contig for it.  All contigs
// returned for the same name share the same backing string.
func (r *Registry) Contig(name string) (Contig, error) {
	symbol, err := r.Intern(name)
	if err != nil {
		return Contig{}, err
	}
	return r.Resolve(symbol)
}

// Resolve returns the Contig for a symbol issued by this registry.
func (r *Registry) Resolve(s Symbol) (Contig, error) {
	if s.registry != r.id {
		return Contig{}, fmt.Errorf("%w: %v", ErrForeignSymbol, s.registry)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(s.index) >= len(r.contigs) {
		return Contig{}, fmt.Errorf("%w: %d", ErrUnknownSymbol, s.index)
	}
	return r.contigs[s.index], nil
}

// Len returns the number of distinct names in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contigs)
}
