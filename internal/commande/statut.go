package commande

import "fmt"

// Order lifecycle: en_attente → prete → en_cours → livree, one step
// forward at a time, never backward.
const (
	StatutEnAttente = "en_attente"
	StatutPrete     = "prete"
	StatutEnCours   = "en_cours"
	StatutLivree    = "livree"
)

var transitions = map[string]string{
	StatutEnAttente: StatutPrete,
	StatutPrete:     StatutEnCours,
	StatutEnCours:   StatutLivree,
}

// ErrTransition rejects a move not present in the transition table.
type ErrTransition struct {
	From, To string
}

func (e ErrTransition) Error() string {
	return fmt.Sprintf("transition de statut invalide: %s -> %s", e.From, e.To)
}

// Valid reports whether s is a known status value.
func Valid(s string) bool {
	switch s {
	case StatutEnAttente, StatutPrete, StatutEnCours, StatutLivree:
		return true
	}
	return false
}

// Transition checks a requested status change against the table.
func Transition(from, to string) error {
	if next, ok := transitions[from]; ok && next == to {
		return nil
	}
	return ErrTransition{From: from, To: to}
}
