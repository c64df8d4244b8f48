package models

// Snapshot é o estado completo do site em memória: a mesma estrutura que
// o cache local e o store remoto guardam, coleção a coleção.
type Snapshot struct {
	Services     []Service     `json:"services"`
	Appointments []Appointment `json:"appointments"`
	BlockedSlots []BlockedSlot `json:"blockedSlots"`
	SiteConfig   SiteConfig    `json:"siteConfig"`
}

// Clone devolve uma cópia independente das coleções, para que chamadores
// possam ler sem segurar o lock do controller.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{SiteConfig: s.SiteConfig}

	if s.Services != nil {
		out.Services = append([]Service(nil), s.Services...)
	}
	if s.Appointments != nil {
		out.Appointments = append([]Appointment(nil), s.Appointments...)
	}
	if s.BlockedSlots != nil {
		out.BlockedSlots = append([]BlockedSlot(nil), s.BlockedSlots...)
	}

	return out
}
