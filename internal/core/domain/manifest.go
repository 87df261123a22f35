package domain

// Manifest is the subset of package.json the dependency reconciler inspects.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Missing returns the requested names that are not direct dependencies.
// Versions are not compared.
func (m *Manifest) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if m == nil {
			missing = append(missing, name)
			continue
		}
		if _, ok := m.Dependencies[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Satisfies reports whether every requested name is a direct dependency.
func (m *Manifest) Satisfies(names []string) bool {
	return len(m.Missing(names)) == 0
}
