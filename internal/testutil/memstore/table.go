package memstore

import "slices"

// table filas de una entidad ordenadas por ID (orden de almacenamiento).
type table[T any] struct {
	idOf   func(*T) *int64
	rows   []*T
	nextID int64
}

func newTable[T any](idOf func(*T) *int64) *table[T] {
	return &table[T]{idOf: idOf}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// insert asigna ID si viene en cero; un ID explícito se respeta (para sembrar datos).
func (t *table[T]) insert(v *T) {
	id := t.idOf(v)
	if *id == 0 {
		t.nextID++
		*id = t.nextID
	} else if *id > t.nextID {
		t.nextID = *id
	}
	t.rows = append(t.rows, clone(v))
	slices.SortFunc(t.rows, func(a, b *T) int {
		switch x, y := *t.idOf(a), *t.idOf(b); {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

func (t *table[T]) index(id int64) int {
	for i, r := range t.rows {
		if *t.idOf(r) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) get(id int64) *T {
	if i := t.index(id); i >= 0 {
		return clone(t.rows[i])
	}
	return nil
}

func (t *table[T]) all() []*T {
	out := make([]*T, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, clone(r))
	}
	return out
}

func (t *table[T]) filter(keep func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, clone(r))
		}
	}
	return out
}

func (t *table[T]) byIDs(ids []int64) []*T {
	return t.filter(func(r *T) bool { return slices.Contains(ids, *t.idOf(r)) })
}

func (t *table[T]) replace(v *T) bool {
	i := t.index(*t.idOf(v))
	if i < 0 {
		return false
	}
	t.rows[i] = clone(v)
	return true
}

func (t *table[T]) remove(id int64) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}
