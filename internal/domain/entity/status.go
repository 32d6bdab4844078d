package entity

// Status estado del ciclo de vida de una factura.
// Las transiciones son monótonas y en una sola dirección:
//
//	Draft → Sending → SentToClient
type Status string

const (
	StatusDraft        Status = "draft"
	StatusSending      Status = "sending"
	StatusSentToClient Status = "sent-to-client" // terminal
)

// IsValid true si s es uno de los estados conocidos.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSending, StatusSentToClient:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }
