package auth

import (
	"github.com/sujeet/alumnisphere/internal/app/models"
	pkgauth "github.com/sujeet/alumnisphere/internal/pkg/auth"
)

// Principal is the authenticated identity threaded explicitly into every
// service call. A nil *Principal means an anonymous caller; anonymous access
// is permitted only on public read operations.
type Principal struct {
	UserID    int64
	Email     string
	Role      models.RoleType
	CollegeID *int64 // nil only for SUPERADMIN
}

// PrincipalFromClaims builds a Principal from validated JWT claims.
// The role string is parsed through the closed enumeration, so a token
// carrying an unknown role never yields an authenticated principal.
func PrincipalFromClaims(claims *pkgauth.Claims) (*Principal, error) {
	role, err := models.ParseRoleType(claims.RoleType)
	if err != nil {
		return nil, err
	}
	return &Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      role,
		CollegeID: claims.CollegeID,
	}, nil
}

// IsAdmin reports whether the principal carries admin authority
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}

// IsSuperAdmin reports whether the principal has cross-college authority
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == models.RoleSuperAdmin
}

// SameCollege reports whether the principal belongs to the given college
func (p *Principal) SameCollege(collegeID int64) bool {
	return p != nil && p.CollegeID != nil && *p.CollegeID == collegeID
}
