package stagecraft

// valueKind tags the finite set of value shapes a property can hold. A
// lookup whose stored kind disagrees with the requested kind is treated as
// absent rather than as a panic or a silent coercion.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindColor
	kindStyle
	kindStrings
	kindInts
)

// PropKey is a typed, named slot in a Properties bag. A bag holds one entry
// per name: With under a key replaces whatever was stored under that name,
// whatever its value type, and a lookup through a key whose value type
// differs from the stored entry's reads as absent.
type PropKey[T any] struct {
	name string
	kind valueKind
}

func StringKey(name string) PropKey[string]     { return PropKey[string]{name, kindString} }
func IntKey(name string) PropKey[int]           { return PropKey[int]{name, kindInt} }
func BoolKey(name string) PropKey[bool]         { return PropKey[bool]{name, kindBool} }
func ColorKey(name string) PropKey[Color]       { return PropKey[Color]{name, kindColor} }
func StyleKey(name string) PropKey[TextStyle]   { return PropKey[TextStyle]{name, kindStyle} }
func StringsKey(name string) PropKey[[]string]  { return PropKey[[]string]{name, kindStrings} }
func IntsKey(name string) PropKey[[]int]        { return PropKey[[]int]{name, kindInts} }

type propEntry struct {
	kind  valueKind
	value any
}

// Properties is a persistent, copy-on-write, type-safe key-value bag
// attached to every node. Lookup is total: a missing or type-mismatched
// key yields the zero value of T rather than an error.
type Properties struct {
	entries map[string]propEntry
}

// EmptyProperties is the neutral, zero-entry bag.
var EmptyProperties = Properties{}

// With returns a new Properties with key set to value, leaving the
// receiver untouched.
func With[T any](p Properties, key PropKey[T], value T) Properties {
	next := make(map[string]propEntry, len(p.entries)+1)
	for k, v := range p.entries {
		next[k] = v
	}
	next[key.name] = propEntry{kind: key.kind, value: value}
	return Properties{entries: next}
}

// Get returns the value stored under key, or the zero value of T with ok
// false if the key is absent or was stored under a different value type.
func Get[T any](p Properties, key PropKey[T]) (value T, ok bool) {
	entry, found := p.entries[key.name]
	if !found || entry.kind != key.kind {
		return value, false
	}
	typed, ok := entry.value.(T)
	if !ok {
		return value, false
	}
	return typed, true
}

// GetOr returns Get's value, falling back to fallback when absent.
func GetOr[T any](p Properties, key PropKey[T], fallback T) T {
	if v, ok := Get(p, key); ok {
		return v
	}
	return fallback
}

// Has reports whether key is present with the matching value type.
func Has[T any](p Properties, key PropKey[T]) bool {
	_, ok := Get(p, key)
	return ok
}

// Equal compares two property bags by value across every stored key; this
// is what the reconciler uses to decide whether a node needs an update.
func (p Properties) Equal(other Properties) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	for k, v := range p.entries {
		ov, ok := other.entries[k]
		if !ok || ov.kind != v.kind {
			return false
		}
		if !equalAny(v.kind, v.value, ov.value) {
			return false
		}
	}
	return true
}

func equalAny(kind valueKind, a, b any) bool {
	switch kind {
	case kindStrings:
		as, bs := a.([]string), b.([]string)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	case kindInts:
		ai, bi := a.([]int), b.([]int)
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if ai[i] != bi[i] {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
