package cache

import (
	"fmt"
	"slices"
	"strings"
)

type Kind string

const (
	KindTransactions Kind = "transactions"
	KindBalance      Kind = "balance"
	KindDetails      Kind = "details"
)

// AllKinds is used when a predicate names no kinds.
var AllKinds = []Kind{KindTransactions, KindBalance, KindDetails}

// Key identifies one cached read. Address is empty for reads not scoped to an account.
type Key struct {
	Kind    Kind
	Address string
	Params  string
}

func NewKey(kind Kind, address, params string) Key {
	return Key{
		Kind:    kind,
		Address: strings.ToLower(address),
		Params:  params,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Kind, k.Address, k.Params)
}

// Predicate selects the keys to invalidate: keys of the listed kinds (all kinds when empty)
// scoped to Address, plus unscoped keys of those kinds.
type Predicate struct {
	Address string
	Kinds   []Kind
}

func (p Predicate) kinds() []Kind {
	if len(p.Kinds) == 0 {
		return AllKinds
	}
	return p.Kinds
}

func (p Predicate) Matches(k Key) bool {
	if !slices.Contains(p.kinds(), k.Kind) {
		return false
	}
	return k.Address == "" || k.Address == strings.ToLower(p.Address)
}

// scopes are the generation counters an invalidation bumps.
func (p Predicate) scopes() []scope {
	kinds := p.kinds()
	out := make([]scope, 0, 2*len(kinds))
	for _, kind := range kinds {
		out = append(out, scope{address: strings.ToLower(p.Address), kind: kind})
		if p.Address != "" {
			out = append(out, scope{kind: kind})
		}
	}
	return out
}

type scope struct {
	address string
	kind    Kind
}

func scopeOf(k Key) scope {
	return scope{address: k.Address, kind: k.Kind}
}

func (s scope) String() string {
	return fmt.Sprintf("%s:%s", s.kind, s.address)
}
