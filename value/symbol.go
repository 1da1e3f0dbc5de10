package value

import "sync"

// Symbol is an opaque atom. Symbols are compared by identity: two symbols
// created by NewSymbol never equal each other, even with the same
// description.
type Symbol struct {
	desc string
}

// NewSymbol creates a fresh symbol. desc is for diagnostics only.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

func (s *Symbol) String() string {
	if s == nil {
		return "Symbol(<nil>)"
	}
	return "Symbol(" + s.desc + ")"
}

// Description returns the text s has been created with.
func (s *Symbol) Description() string {
	return s.desc
}

var registry = struct {
	sync.Mutex
	symbols map[string]*Symbol
}{symbols: make(map[string]*Symbol)}

// SymbolFor returns the process-wide symbol interned for key, creating it
// on first use.
func SymbolFor(key string) *Symbol {
	registry.Lock()
	defer registry.Unlock()
	if s, ok := registry.symbols[key]; ok {
		return s
	}
	s := NewSymbol(key)
	registry.symbols[key] = s
	return s
}
