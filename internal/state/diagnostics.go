package state

import (
	"sync"
	"time"
)

// Kind distingue as classes de diagnóstico que o painel admin exibe.
type Kind string

const (
	// KindRemoteUnreachable cobre falha genérica de rede/timeout/parse.
	KindRemoteUnreachable Kind = "remote_unreachable"

	// KindAccessForbidden é a rejeição por política de acesso do backend.
	// O painel usa esse kind para orientar o admin a revisar as
	// permissões da tabela, em vez de mostrar um erro genérico.
	KindAccessForbidden Kind = "access_forbidden"

	// KindCacheFailure indica falha ao gravar o cache local.
	KindCacheFailure Kind = "cache_failure"
)

type Diagnostic struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Diagnostics é um canal de avisos não fatais: nenhuma falha remota
// derruba o processo, o pior caso é operar com dados locais e um aviso.
type Diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
	max   int
}

func NewDiagnostics(max int) *Diagnostics {
	if max <= 0 {
		max = 50
	}
	return &Diagnostics{max: max}
}

func (d *Diagnostics) Record(kind Kind, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = append(d.items, Diagnostic{
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	})

	if len(d.items) > d.max {
		d.items = d.items[len(d.items)-d.max:]
	}
}

func (d *Diagnostics) List() []Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Diagnostic(nil), d.items...)
}

func (d *Diagnostics) Last() (Diagnostic, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.items) == 0 {
		return Diagnostic{}, false
	}
	return d.items[len(d.items)-1], true
}

func (d *Diagnostics) HasKind(kind Kind) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, item := range d.items {
		if item.Kind == kind {
			return true
		}
	}
	return false
}
