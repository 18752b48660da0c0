package middleware

import (
	"construction_quote/internal/usecase/interfaces"
	"construction_quote/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator access required", http.StatusForbidden)
)

// AdminGuard lets the request through only when the authorizer accepts its
// bearer token. Authorizer failures are reported as 500, never as a pass.
func AdminGuard(authorizer interfaces.IAdminAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		isAdmin, err := authorizer.IsAdmin(c.Request.Context(), token)
		if err != nil {
			log.Printf("[http][middleware] admin check failed path=%s err=%v", c.FullPath(), err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
