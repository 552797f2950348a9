package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid applies the syntactic check the registration form relies
// on: a parseable address whose domain contains at least one dot.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}
