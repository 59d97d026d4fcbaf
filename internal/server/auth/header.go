package auth

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

// ExtractCredential parses an Authorization header value of the form
// "<scheme> <value>". The scheme comparison is case-sensitive. The value is
// everything after the scheme with surrounding whitespace trimmed; inner
// whitespace is kept as sent.
func ExtractCredential(header string, scheme string) (string, error) {
	if header == "" {
		return "", common.Unauthenticated(common.MsgAuthorizationNotFound)
	}

	trimmed := strings.TrimSpace(header)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 || fields[0] != scheme {
		return "", common.Unauthenticated(common.MsgWrongHeaderScheme)
	}

	value := strings.TrimSpace(trimmed[len(fields[0]):])
	if value == "" {
		return "", common.Unauthenticated(common.MsgEmptyToken)
	}
	return value, nil
}

func GetBearerToken(h http.Header) (string, error) {
	return ExtractCredential(h.Get(common.AuthorizationHeaderName), common.SchemeBearer)
}

func GetAPIKey(h http.Header) (string, error) {
	return ExtractCredential(h.Get(common.AuthorizationHeaderName), common.SchemeAPIKey)
}
