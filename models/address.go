package models

// UserServer is the network domain appended to a phone number to form the
// address of a regular user account.
const UserServer = "s.whatsapp.net"

// Address is the network identifier of a message recipient derived from a
// phone number. Phone holds digits only.
type Address struct {
	Phone string
}

// String returns the full address in "<digits>@s.whatsapp.net" form.
func (a Address) String() string {
	return a.Phone + "@" + UserServer
}

// IsZero reports whether the address was never resolved.
func (a Address) IsZero() bool {
	return a.Phone == ""
}
