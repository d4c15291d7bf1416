// Package listing implements the in-memory filter-and-paginate behavior every
// list view applies to its fetched collection. Filtering is non-destructive:
// the source slice is retained so filters can be cleared without a refetch.
package listing

import "strings"

// ItemsPorPagina is the page size used across all list views.
const ItemsPorPagina = 10

// Campo extracts a searchable string field from an item.
type Campo[T any] func(T) string

type filtro[T any] struct {
	texto  string
	campos []Campo[T]
}

// Listado holds a source collection plus the active filters and page cursor.
// Distinct filter boxes combine with AND; the fields of the general search
// box combine with OR.
type Listado[T any] struct {
	fuente    []T
	filtrados []T
	filtros   map[string]filtro[T]
	porPagina int
	pagina    int
}

func Nuevo[T any](fuente []T) *Listado[T] {
	l := &Listado[T]{
		fuente:    fuente,
		filtros:   make(map[string]filtro[T]),
		porPagina: ItemsPorPagina,
		pagina:    1,
	}
	l.refiltrar()
	return l
}

// ConTamano overrides the default page size. Sizes below 1 are ignored.
func (l *Listado[T]) ConTamano(porPagina int) *Listado[T] {
	if porPagina >= 1 {
		l.porPagina = porPagina
		l.refiltrar()
	}
	return l
}

// DefinirFiltro sets (or, with empty text, clears) one named filter box and
// resets the cursor to the first page. An item passes a box when ANY of the
// box's fields contains the text, case-insensitively.
func (l *Listado[T]) DefinirFiltro(clave, texto string, campos ...Campo[T]) {
	if strings.TrimSpace(texto) == "" {
		delete(l.filtros, clave)
	} else {
		l.filtros[clave] = filtro[T]{texto: texto, campos: campos}
	}
	l.pagina = 1
	l.refiltrar()
}

// Reemplazar swaps in a freshly fetched source collection, keeping the active
// filters and reapplying them.
func (l *Listado[T]) Reemplazar(fuente []T) {
	l.fuente = fuente
	l.refiltrar()
}

func (l *Listado[T]) refiltrar() {
	l.filtrados = l.filtrados[:0]
	for _, item := range l.fuente {
		if l.pasa(item) {
			l.filtrados = append(l.filtrados, item)
		}
	}
}

func (l *Listado[T]) pasa(item T) bool {
	for _, f := range l.filtros {
		needle := strings.ToLower(f.texto)
		alguno := false
		for _, campo := range f.campos {
			if strings.Contains(strings.ToLower(campo(item)), needle) {
				alguno = true
				break
			}
		}
		if !alguno {
			return false
		}
	}
	return true
}

// Filtrados returns the full filtered collection, unpaged.
func (l *Listado[T]) Filtrados() []T { return l.filtrados }

// TotalPaginas is ceil(filteredCount / pageSize).
func (l *Listado[T]) TotalPaginas() int {
	return (len(l.filtrados) + l.porPagina - 1) / l.porPagina
}

// PaginaActual is always clamped into [1, TotalPaginas], or 1 when the
// filtered set is empty.
func (l *Listado[T]) PaginaActual() int {
	if total := l.TotalPaginas(); total > 0 && l.pagina > total {
		return total
	}
	if l.pagina < 1 {
		return 1
	}
	return l.pagina
}

// CambiarPagina navigates to the given page. Targets outside
// [1, TotalPaginas] are a guarded no-op, not an error.
func (l *Listado[T]) CambiarPagina(pagina int) {
	if pagina >= 1 && pagina <= l.TotalPaginas() {
		l.pagina = pagina
	}
}

// Pagina returns the current page's slice of the filtered collection.
func (l *Listado[T]) Pagina() []T {
	actual := l.PaginaActual()
	inicio := (actual - 1) * l.porPagina
	if inicio >= len(l.filtrados) {
		return nil
	}
	fin := inicio + l.porPagina
	if fin > len(l.filtrados) {
		fin = len(l.filtrados)
	}
	return l.filtrados[inicio:fin]
}

// Resultado is the pagination envelope list endpoints return.
type Resultado[T any] struct {
	Data         []T `json:"data"`
	Pagina       int `json:"pagina"`
	TotalPaginas int `json:"totalPaginas"`
	Total        int `json:"total"`
}

// Envolver packages the current page for the wire.
func Envolver[T any](l *Listado[T]) Resultado[T] {
	return Resultado[T]{
		Data:         l.Pagina(),
		Pagina:       l.PaginaActual(),
		TotalPaginas: l.TotalPaginas(),
		Total:        len(l.Filtrados()),
	}
}
