package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteConfigWithDefaults(t *testing.T) {
	t.Run("EmptyGetsEveryDefault", func(t *testing.T) {
		got := SiteConfig{}.WithDefaults()
		assert.Equal(t, DefaultSiteConfig(), got)
	})

	t.Run("FilledFieldsWin", func(t *testing.T) {
		got := SiteConfig{
			ProfessionalName: "Outro Estúdio",
			HeroTitle:        "Título próprio",
		}.WithDefaults()

		assert.Equal(t, "Outro Estúdio", got.ProfessionalName)
		assert.Equal(t, "Título próprio", got.HeroTitle)
		assert.Equal(t, DefaultSiteConfig().WhatsappNumber, got.WhatsappNumber)
	})

	t.Run("EmptyLogoStaysEmpty", func(t *testing.T) {
		got := SiteConfig{LogoURL: ""}.WithDefaults()
		assert.Empty(t, got.LogoURL)

		got = SiteConfig{LogoURL: "https://cdn.example.com/logo.webp"}.WithDefaults()
		assert.Equal(t, "https://cdn.example.com/logo.webp", got.LogoURL)
	})
}

func TestBlockedSlotMatches(t *testing.T) {
	day := BlockedSlot{ID: "b1", Date: "2024-06-10"}
	slot := BlockedSlot{ID: "b2", Date: "2024-06-10", Time: "09:00"}

	assert.True(t, day.BlocksWholeDay())
	assert.False(t, slot.BlocksWholeDay())

	assert.True(t, day.Matches("2024-06-10", ""))
	assert.False(t, day.Matches("2024-06-10", "09:00"))

	assert.True(t, slot.Matches("2024-06-10", "09:00"))
	assert.False(t, slot.Matches("2024-06-10", "10:00"))
	assert.False(t, slot.Matches("2024-06-11", "09:00"))
}

func TestSnapshotClone(t *testing.T) {
	snap := Snapshot{
		Services:     []Service{{ID: "s1", Name: "Manicure"}},
		Appointments: []Appointment{},
		BlockedSlots: []BlockedSlot{},
		SiteConfig:   DefaultSiteConfig(),
	}

	clone := snap.Clone()
	clone.Services[0].Name = "Alterado"

	assert.Equal(t, "Manicure", snap.Services[0].Name)
}
