package adapter

import "github.com/MKhiriev/go-wa-sender/models"

// Event is a single notification emitted by a [Session].
//
// The concrete types are [PairingChallenge], [Opened], [Closed],
// [CredentialUpdate] and [IncomingMessage].
type Event interface {
	sessionEvent()
}

// PairingChallenge carries a code the operator must scan with the phone.
type PairingChallenge struct {
	Code string
}

// Opened means the session is authenticated and ready to send.
type Opened struct {
	// Account is the address of the linked account.
	Account string
}

// Closed means the session ended. StatusCode is one of the models.Status*
// codes, or 0 when the transport gave none.
type Closed struct {
	StatusCode int
	Err        error
}

// CredentialUpdate carries a credential change that must be persisted.
type CredentialUpdate struct {
	Delta models.CredentialDelta
}

// IncomingMessage carries a text message received by the linked account.
type IncomingMessage struct {
	Message models.IncomingMessage
}

func (PairingChallenge) sessionEvent() {}
func (Opened) sessionEvent()           {}
func (Closed) sessionEvent()           {}
func (CredentialUpdate) sessionEvent() {}
func (IncomingMessage) sessionEvent()  {}
