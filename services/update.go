package services

import "github.com/breno-augst/family-relationship-api/repository"

// UpdateInput carries the optional fields of a partial update. A nil field
// keeps the stored value; any non-nil value, zero included, is written.
type UpdateInput struct {
	NewCPF  *string `json:"newCpf,omitempty"`
	NewName *string `json:"newName,omitempty"`
	NewAge  *int    `json:"newAge,omitempty"`
}

func (in UpdateInput) isEmpty() bool {
	return in.NewCPF == nil && in.NewName == nil && in.NewAge == nil
}

// resultingCPF is the key the record is stored under after the update.
func (in UpdateInput) resultingCPF(current string) string {
	if in.NewCPF != nil {
		return *in.NewCPF
	}
	return current
}

func (in UpdateInput) changes() repository.Changes {
	return repository.Changes{CPF: in.NewCPF, Name: in.NewName, Age: in.NewAge}
}
