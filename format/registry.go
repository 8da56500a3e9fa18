package format

import (
	"maps"
	"slices"
)

// RegistryEntry describes one type identifier of the Trick type table.
type RegistryEntry struct {
	Tag   TypeTag
	CName string // C spelling used by Trick, e.g. "unsigned short"
}

// Registry maps the integer type identifiers stored in a .trk header to type tags.
//
// A Registry is immutable once built and safe for concurrent use. Decoders take
// it as an injected dependency rather than consulting process-wide state, so tests
// can substitute a reduced or extended table.
type Registry struct {
	entries map[uint32]RegistryEntry
}

// trickTypes is the fixed Trick type table. Identifiers 3 and 16 are unassigned.
var trickTypes = map[uint32]RegistryEntry{
	1:  {Tag: TypeInt8, CName: "char"},
	2:  {Tag: TypeUint8, CName: "unsigned char"},
	4:  {Tag: TypeInt16, CName: "short"},
	5:  {Tag: TypeUint16, CName: "unsigned short"},
	6:  {Tag: TypeInt32, CName: "int"},
	7:  {Tag: TypeUint32, CName: "unsigned int"},
	8:  {Tag: TypeInt64, CName: "long"},
	9:  {Tag: TypeUint64, CName: "unsigned long"},
	10: {Tag: TypeFloat32, CName: "float"},
	11: {Tag: TypeFloat64, CName: "double"},
	12: {Tag: TypeBitField, CName: "bit field"},
	13: {Tag: TypeUnsignedBitField, CName: "unsigned bit field"},
	14: {Tag: TypeInt64, CName: "long long"},
	15: {Tag: TypeUint64, CName: "unsigned long long"},
	17: {Tag: TypeBool, CName: "bool"},
}

// Trick type identifiers referenced by name in code and tests.
const (
	IDChar             uint32 = 1
	IDUnsignedChar     uint32 = 2
	IDShort            uint32 = 4
	IDUnsignedShort    uint32 = 5
	IDInt              uint32 = 6
	IDUnsignedInt      uint32 = 7
	IDLong             uint32 = 8
	IDUnsignedLong     uint32 = 9
	IDFloat            uint32 = 10
	IDDouble           uint32 = 11
	IDBitField         uint32 = 12
	IDUnsignedBitField uint32 = 13
	IDLongLong         uint32 = 14
	IDUnsignedLongLong uint32 = 15
	IDBool             uint32 = 17
)

var defaultRegistry = &Registry{entries: trickTypes}

// DefaultRegistry returns the registry holding the standard Trick type table.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from the given entries.
//
// The map is copied, so later changes by the caller do not affect the registry.
// Entries with an invalid tag are dropped.
func NewRegistry(entries map[uint32]RegistryEntry) *Registry {
	r := &Registry{entries: make(map[uint32]RegistryEntry, len(entries))}
	for id, entry := range entries {
		if entry.Tag.IsValid() {
			r.entries[id] = entry
		}
	}

	return r
}

// Lookup resolves a type identifier to its tag.
// The second result is false for identifiers not present in the table.
func (r *Registry) Lookup(id uint32) (TypeTag, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return TypeInvalid, false
	}

	return entry.Tag, true
}

// CTypeName returns the C spelling of the type identifier, or "" if unknown.
func (r *Registry) CTypeName(id uint32) string {
	return r.entries[id].CName
}

// IDs returns all registered identifiers in ascending order.
func (r *Registry) IDs() []uint32 {
	return slices.Sorted(maps.Keys(r.entries))
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.entries)
}
