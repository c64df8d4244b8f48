package models

import "time"

type Appointment struct {
	ID             string `json:"id"`
	ClientName     string `json:"clientName"`
	ClientWhatsapp string `json:"clientWhatsapp"`

	// ServiceID é uma referência fraca: o serviço pode ter sido removido
	// depois do agendamento.
	ServiceID string `json:"serviceId"`

	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
