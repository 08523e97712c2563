package core

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

var (
	registry   = make(map[string]TableDefinition)
	registryMu sync.RWMutex
)

// Register adds a list page definition. It panics on an invalid or
// duplicate definition, so it belongs in init functions.
func Register(def TableDefinition) {
	if err := RegisterE(def); err != nil {
		panic(err.Error())
	}
}

// RegisterE adds a definition loaded at runtime. Both invalid and duplicate
// definitions wrap ErrInvalidDefinition.
func RegisterE(def TableDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		return fmt.Errorf("%w: table %s already registered", ErrInvalidDefinition, def.Info.Key)
	}
	registry[def.Info.Key] = withDisplayInfo(def)
	return nil
}

// withDisplayInfo fills the serializable Info from the column model.
func withDisplayInfo(def TableDefinition) TableDefinition {
	def.Info.Columns = columnInfos(def.Columns)
	def.Info.SearchFields = slices.Clone(def.SearchFields)
	def.Info.PageSize = def.PageSize
	if def.Info.Label == "" {
		def.Info.Label = def.Info.Key
	}
	return def
}

// Get returns the definition registered under key.
func Get(key string) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns every definition ordered by group, then key.
func All() []TableDefinition {
	return collect(func(TableDefinition) bool { return true })
}

// ByGroup returns the definitions of one role section ordered by key.
func ByGroup(group string) []TableDefinition {
	return collect(func(def TableDefinition) bool { return def.Info.Group == group })
}

func collect(keep func(TableDefinition) bool) []TableDefinition {
	registryMu.RLock()
	result := make([]TableDefinition, 0, len(registry))
	for _, def := range registry {
		if keep(def) {
			result = append(result, def)
		}
	}
	registryMu.RUnlock()

	slices.SortFunc(result, func(a, b TableDefinition) int {
		return cmp.Or(
			cmp.Compare(a.Info.Group, b.Info.Group),
			cmp.Compare(a.Info.Key, b.Info.Key),
		)
	})
	return result
}

// Groups returns the distinct role sections, sorted.
func Groups() []string {
	registryMu.RLock()
	groups := make([]string, 0, len(registry))
	for _, def := range registry {
		groups = append(groups, def.Info.Group)
	}
	registryMu.RUnlock()

	slices.Sort(groups)
	return slices.Compact(groups)
}

// TableCount returns the number of registered list pages.
func TableCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear empties the registry. Tests use it between cases.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]TableDefinition)
}
