package reconcile

import "github.com/shopspring/decimal"

// Number agrupa los tipos numéricos que admite GroupSum.
type Number interface {
	~int | ~int64 | ~float64
}

// UniqueCount cuenta los valores distintos de un campo sobre la colección.
// Sobre colección vacía devuelve 0.
func UniqueCount[T any, K comparable](items []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		seen[key(item)] = struct{}{}
	}
	return len(seen)
}

// Missing devuelve los elementos de full cuya clave no aparece en related,
// preservando el orden de full. Es la detección de asociaciones faltantes del
// panel (ej. productos sin ningún proveedor asociado).
func Missing[T, R any, K comparable](
	full []T,
	related []R,
	keyFull func(T) K,
	keyRelated func(R) K,
) []T {
	present := make(map[K]struct{}, len(related))
	for _, r := range related {
		present[keyRelated(r)] = struct{}{}
	}
	out := make([]T, 0)
	for _, t := range full {
		if _, ok := present[keyFull(t)]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// GroupSum acumula un campo numérico por clave de agrupación.
// Sobre colección vacía devuelve un mapa vacío, nunca nil como error.
func GroupSum[T any, K comparable, N Number](items []T, key func(T) K, value func(T) N) map[K]N {
	out := make(map[K]N)
	for _, item := range items {
		out[key(item)] += value(item)
	}
	return out
}

// GroupSumDecimal acumula un campo decimal (dinero) por clave de agrupación.
func GroupSumDecimal[T any, K comparable](items []T, key func(T) K, value func(T) decimal.Decimal) map[K]decimal.Decimal {
	out := make(map[K]decimal.Decimal)
	for _, item := range items {
		k := key(item)
		out[k] = out[k].Add(value(item))
	}
	return out
}

// CountBy cuenta elementos por clave de agrupación (cardinalidad por grupo).
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}
