package interfaces

import "context"

// IAdminAuthorizer is the external capability check guarding the admin editor.
type IAdminAuthorizer interface {
	IsAdmin(ctx context.Context, token string) (bool, error)
}
