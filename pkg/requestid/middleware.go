package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// checkID accepts client supplied ids made of letters, digits, '-' and '_'.
var checkID = validator.All(
	validator.MaxLen(maxIDLength),
	validator.MatchesRegex(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`), "request id"),
)

// Middleware propagates the X-Request-ID header. Missing or malformed ids are
// replaced by a random UUID. The id is echoed in the response header and
// stored in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if checkID(id).IsInvalid() {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
