package booking

import "github.com/arielstudio/nail-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Os valores seguem o que a página pública exibe.
type Status string

const (
	StatusPending   Status = "Pendente"
	StatusConfirmed Status = "Confirmado"
	StatusCancelled Status = "Cancelado"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanTransition define as transições permitidas. Confirmado e Cancelado
// são terminais: voltar para Pendente (ou trocar entre terminais) é
// rejeitado.
func CanTransition(current, next Status) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}

	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}

	if next == StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}

	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPending
}
