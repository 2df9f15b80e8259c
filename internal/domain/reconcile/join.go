// Package reconcile implementa la capa de reconciliación del panel: resolver
// claves foráneas entre colecciones planas del API, filtrarlas y derivar
// agregados. Todas las operaciones son puras sobre snapshots ya descargados;
// cada vista del panel configura los accessors en lugar de repetir los bucles.
package reconcile

// indexThreshold: por debajo se usa barrido lineal; por encima se construye un
// índice clave→registro para mantener el join cerca de O(n+m).
const indexThreshold = 256

// Join resuelve la clave foránea de cada elemento de source contra la clave
// primaria de reference y produce un registro enriquecido vía enrich. Cuando la
// clave no tiene correspondencia, enrich recibe el cero de R y found=false; la
// vista degrada a un placeholder visible en lugar de fallar. El orden de entrada
// se preserva y source nunca se muta.
func Join[S, R, V any, K comparable](
	source []S,
	reference []R,
	sourceKey func(S) K,
	refKey func(R) K,
	enrich func(S, R, bool) V,
) []V {
	out := make([]V, 0, len(source))

	if len(reference) > indexThreshold {
		idx := Index(reference, refKey)
		for _, s := range source {
			r, ok := idx[sourceKey(s)]
			out = append(out, enrich(s, r, ok))
		}
		return out
	}

	for _, s := range source {
		var match R
		found := false
		k := sourceKey(s)
		for _, r := range reference {
			if refKey(r) == k {
				match = r
				found = true
				break
			}
		}
		out = append(out, enrich(s, match, found))
	}
	return out
}

// Index construye el índice clave→registro de una colección de referencia.
// Ante claves repetidas gana la primera aparición, igual que el barrido lineal.
func Index[R any, K comparable](reference []R, key func(R) K) map[K]R {
	idx := make(map[K]R, len(reference))
	for _, r := range reference {
		if _, ok := idx[key(r)]; !ok {
			idx[key(r)] = r
		}
	}
	return idx
}
