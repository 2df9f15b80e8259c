package reconcile

import "strings"

// AllValues es el valor centinela que desactiva un filtro categórico.
// La cadena vacía también lo desactiva.
const AllValues = "todos"

// Filter describe cómo buscar y filtrar una colección: campos de texto para la
// búsqueda libre (semántica OR entre campos) y accessors nombrados para los
// filtros categóricos (semántica AND entre filtros activos).
type Filter[T any] struct {
	TextFields []func(T) string
	Categories map[string]func(T) string
}

// Apply devuelve el subconjunto de items que coincide con la consulta y con
// todos los filtros activos, preservando el orden original. La búsqueda es por
// substring sin distinguir mayúsculas y sin normalizar diacríticos ("cafe" no
// encuentra "café"); consulta vacía coincide con todo. items nunca se muta.
func (f Filter[T]) Apply(items []T, query string, selected map[string]string) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !f.matchesQuery(item, query) {
			continue
		}
		if !f.matchesCategories(item, selected) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (f Filter[T]) matchesQuery(item T, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range f.TextFields {
		if strings.Contains(strings.ToLower(field(item)), query) {
			return true
		}
	}
	return false
}

func (f Filter[T]) matchesCategories(item T, selected map[string]string) bool {
	for name, want := range selected {
		if want == "" || want == AllValues {
			continue
		}
		accessor, ok := f.Categories[name]
		if !ok {
			// Filtro desconocido: se ignora en lugar de excluir resultados.
			continue
		}
		if !strings.EqualFold(accessor(item), want) {
			return false
		}
	}
	return true
}
