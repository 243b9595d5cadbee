// Package sig implements the signature table: the external collaborator
// that maps opaque integer keys to constant metadata for both the type
// language (internal/typ) and the term algebra (internal/term). It is a
// register-once, look-up-by-key, reject-conflicts registry.
package sig

import (
	"fmt"

	"github.com/go-tptp/huet/internal/term"
	"github.com/go-tptp/huet/internal/typ"
)

// Kind classifies a signature entry.
type Kind int

const (
	// TypeConstructor is a type-level symbol, e.g. $i, $o, or a
	// user-declared type constructor.
	TypeConstructor Kind = iota
	// Uninterpreted is a term-level constant with no definition.
	Uninterpreted
	// Defined is a term-level constant with a Definition to unfold
	// during delta-normalisation.
	Defined
	// Fixed is a built-in symbol pre-registered by the signature table
	// itself (the initial $o and $i keys).
	Fixed
)

func (k Kind) String() string {
	switch k {
	case TypeConstructor:
		return "type-constructor"
	case Uninterpreted:
		return "uninterpreted"
	case Defined:
		return "defined"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Entry is the metadata recorded for one signature key.
type Entry struct {
	Name       string
	Kind       Kind
	Type       typ.Type
	Definition term.Term // non-nil only when Kind == Defined
}

// Table is the signature: a coherent, append-mostly map from keys to
// Entry, plus name-based lookup for parsing.
type Table struct {
	byKey  map[int]Entry
	byName map[string]int
	next   int
}

// Fixed keys pre-registered by every new Table: object truth ($o) and
// the individual domain ($i).
const (
	KeyBool       = 1 // $o
	KeyIndividual = 2 // $i
)

// New returns a signature table with $o and $i pre-registered.
func New() *Table {
	t := &Table{byKey: make(map[int]Entry), byName: make(map[string]int), next: KeyIndividual}
	t.byKey[KeyBool] = Entry{Name: "$o", Kind: Fixed, Type: typ.Base{Sym: typ.Key(KeyBool), Name: "$o"}}
	t.byName["$o"] = KeyBool
	t.byKey[KeyIndividual] = Entry{Name: "$i", Kind: Fixed, Type: typ.Base{Sym: typ.Key(KeyIndividual), Name: "$i"}}
	t.byName["$i"] = KeyIndividual
	return t
}

// Register adds a new entry under the given name, minting a fresh key
// for it. It returns an error if name is already registered with a
// conflicting type or kind: same name, different meaning, is rejected
// rather than silently shadowed.
func (t *Table) Register(name string, kind Kind, ty typ.Type, def term.Term) (int, error) {
	if existing, ok := t.byName[name]; ok {
		e := t.byKey[existing]
		if !e.Type.Equals(ty) || e.Kind != kind {
			return 0, fmt.Errorf("sig: %q already registered as %s : %s, cannot re-register as %s : %s",
				name, e.Kind, e.Type, kind, ty)
		}
		return existing, nil
	}
	t.next++
	key := t.next
	t.byKey[key] = Entry{Name: name, Kind: kind, Type: ty, Definition: def}
	t.byName[name] = key
	return key, nil
}

// Lookup returns the entry for key, if any.
func (t *Table) Lookup(key int) (Entry, bool) {
	e, ok := t.byKey[key]
	return e, ok
}

// Exists reports whether name has already been registered.
func (t *Table) Exists(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Size returns the number of registered entries, including the two fixed
// initial keys ($o and $i).
func (t *Table) Size() int {
	return len(t.byKey)
}

// Resolve returns the key registered under name, if any.
func (t *Table) Resolve(name string) (int, bool) {
	k, ok := t.byName[name]
	return k, ok
}

// RegisterType mints a fresh key and registers name as a new base type
// constructor, returning both the key and the resulting Base type — the
// same self-referential pattern New() uses to seed $o and $i (a base
// type's Type entry carries its own just-minted key). A name already
// registered as a type is returned unchanged rather than re-minted.
func (t *Table) RegisterType(name string) (int, typ.Type) {
	if existing, ok := t.byName[name]; ok {
		return existing, t.byKey[existing].Type
	}
	t.next++
	key := t.next
	ty := typ.Base{Sym: typ.Key(key), Name: name}
	t.byKey[key] = Entry{Name: name, Kind: TypeConstructor, Type: ty}
	t.byName[name] = key
	return key, ty
}

// Fresh mints a brand-new Skolem constant of type ty, named prefix
// followed by its key, and registers it as Uninterpreted. Used by
// internal/huet's Func rule.
func (t *Table) Fresh(prefix string, ty typ.Type) int {
	t.next++
	key := t.next
	name := fmt.Sprintf("%s%d", prefix, key)
	t.byKey[key] = Entry{Name: name, Kind: Uninterpreted, Type: ty}
	t.byName[name] = key
	return key
}
