package validators

import "strings"

// IsWhatsappValid aceita números com ou sem DDI, com os separadores
// usuais. A validação é de forma, não de existência.
func IsWhatsappValid(number string) bool {
	cleaned := strings.TrimSpace(number)
	cleaned = strings.TrimPrefix(cleaned, "+")

	digits := 0
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separadores tolerados
		default:
			return false
		}
	}

	return digits >= 10 && digits <= 13
}
