package models

type SiteConfig struct {
	ProfessionalName string `json:"professionalName"`
	LogoURL          string `json:"logoUrl"`
	WhatsappNumber   string `json:"whatsappNumber"`
	Address          string `json:"address"`
	HeroTitle        string `json:"heroTitle"`
	HeroSubtitle     string `json:"heroSubtitle"`
	ServicesTitle    string `json:"servicesTitle"`
	ContactTitle     string `json:"contactTitle"`
	FooterName       string `json:"footerName"`
	FooterContact    string `json:"footerContact"`
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		ProfessionalName: "Ariel Lima",
		LogoURL:          "",
		WhatsappNumber:   "71996463245",
		Address:          "Rua das Flores, 123 - Centro, Salvador/BA",
		HeroTitle:        "Unhas impecáveis, autoestima renovada",
		HeroSubtitle:     "Especialista em design de unhas e alongamentos que realçam sua beleza única.",
		ServicesTitle:    "Nossos Procedimentos",
		ContactTitle:     "Agende seu Momento",
		FooterName:       "Manuela Prado",
		FooterContact:    "719-9646-3245",
	}
}

// WithDefaults preenche campos vazios com os valores padrão, garantindo
// que a configuração sempre tenha todos os campos.
func (c SiteConfig) WithDefaults() SiteConfig {
	def := DefaultSiteConfig()

	pick := func(v, fallback string) string {
		if v != "" {
			return v
		}
		return fallback
	}

	return SiteConfig{
		ProfessionalName: pick(c.ProfessionalName, def.ProfessionalName),
		LogoURL:          c.LogoURL, // logo ausente é válido (exibe o nome)
		WhatsappNumber:   pick(c.WhatsappNumber, def.WhatsappNumber),
		Address:          pick(c.Address, def.Address),
		HeroTitle:        pick(c.HeroTitle, def.HeroTitle),
		HeroSubtitle:     pick(c.HeroSubtitle, def.HeroSubtitle),
		ServicesTitle:    pick(c.ServicesTitle, def.ServicesTitle),
		ContactTitle:     pick(c.ContactTitle, def.ContactTitle),
		FooterName:       pick(c.FooterName, def.FooterName),
		FooterContact:    pick(c.FooterContact, def.FooterContact),
	}
}

func DefaultServices() []Service {
	return []Service{
		{ID: "1", Name: "Manicure Simples", Description: "Cutilagem e esmaltação tradicional com acabamento impecável."},
		{ID: "2", Name: "Alongamento em Gel", Description: "Extensão de alta resistência com curvatura C natural."},
		{ID: "3", Name: "Banho de Gel", Description: "Camada protetora para fortalecer e dar brilho às unhas naturais."},
		{ID: "4", Name: "Nail Art Luxo", Description: "Decorações personalizadas, pedrarias e desenhos feitos à mão."},
	}
}
