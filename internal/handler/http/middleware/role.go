package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/handler/http/response"
)

// ActorHeader names the header carrying the acting employee's id. The login
// model is an unauthenticated id lookup, so privileged routes identify the
// caller the same way and check the role on record.
const ActorHeader = "X-Employee-ID"

type actorKey struct{}

// Actor returns the acting employee stored by RequireRole, if any.
func Actor(ctx context.Context) (employee.Employee, bool) {
	emp, ok := ctx.Value(actorKey{}).(employee.Employee)
	return emp, ok
}

// RequireRole looks up the acting employee from the ActorHeader and rejects
// the request unless their role carries at least min's privilege
// (Admin > Clerk > Employee).
func RequireRole(repo employee.EmployeeRepository, min employee.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actorID := strings.ToUpper(strings.TrimSpace(r.Header.Get(ActorHeader)))
			if actorID == "" {
				response.Forbidden(w, "Header "+ActorHeader+" is required")
				return
			}

			actor, err := repo.GetByID(r.Context(), actorID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !actor.Role.AtLeast(min) {
				response.Forbidden(w, "Insufficient privileges")
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
