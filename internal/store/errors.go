package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrWriteForbidden indica rejeição por política de acesso (grant ou
	// row-level security), o modo de falha dominante em backends
	// gerenciados. Precisa ser distinguível de falha genérica para que o
	// painel oriente o admin a corrigir as permissões da tabela.
	ErrWriteForbidden = errors.New("store: write forbidden")

	ErrRecordNotFound = errors.New("store: record not found")
)

// insufficient_privilege
const pgInsufficientPrivilege = "42501"

// Classify traduz erros do driver para a taxonomia do store.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgInsufficientPrivilege {
			return ErrWriteForbidden
		}
		if strings.Contains(pgErr.Message, "row-level security") {
			return ErrWriteForbidden
		}
	}

	// Assinatura textual, para o caso do driver não expor o SQLSTATE.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "row-level security") {
		return ErrWriteForbidden
	}

	return err
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrWriteForbidden)
}
