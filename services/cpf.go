package services

const cpfLength = 11

// ValidCPF reports whether cpf is exactly 11 ASCII digits.
func ValidCPF(cpf string) bool {
	if len(cpf) != cpfLength {
		return false
	}
	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
	}
	return true
}
