package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireEmployee only lets through sessions bound to an organization and an
// employee record; attendance is always recorded for that pair.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		if roleStr, _ := claims["role"].(string); user.Role(roleStr).IsPending() {
			response.HandleError(w, user.ErrCompanyIDRequired)
			return
		}

		if companyID, ok := claims["company_id"].(string); !ok || companyID == "" {
			response.HandleError(w, user.ErrCompanyIDRequired)
			return
		}

		if employeeID, ok := claims["employee_id"].(string); !ok || employeeID == "" {
			response.HandleError(w, user.ErrEmployeeIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
