package bom

// Confirmer asks the user to approve a destructive or persisting action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Always approves every prompt.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Never declines every prompt.
var Never Confirmer = ConfirmFunc(func(string) bool { return false })
