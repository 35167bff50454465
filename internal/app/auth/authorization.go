package auth

import (
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

// AuthorizationService holds the per-operation permission rules. All methods
// are pure decisions over the principal and already-loaded entities: the
// caller resolves existence first, so not-found is reported before any
// permission verdict that depends on the target.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// RequireAuthenticated rejects anonymous callers
func (s *AuthorizationService) RequireAuthenticated(principal *Principal) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// CanModifyPost allows the post author to update or delete their post, and a
// same-college admin to delete it.
func (s *AuthorizationService) CanModifyPost(principal *Principal, post *models.Post) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.UserID == post.AuthorID {
		return nil
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if principal.Role == models.RoleAdmin && principal.SameCollege(post.CollegeID) {
		return nil
	}
	return apperrors.NewForbiddenError("you do not have permission to modify this post")
}

// CanDeleteComment allows the comment author, the parent post's author, or an
// admin of the post's college to delete a comment.
func (s *AuthorizationService) CanDeleteComment(principal *Principal, comment *models.Comment, parentPost *models.Post) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.UserID == comment.AuthorID {
		return nil
	}
	if parentPost != nil && principal.UserID == parentPost.AuthorID {
		return nil
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if parentPost != nil && principal.Role == models.RoleAdmin && principal.SameCollege(parentPost.CollegeID) {
		return nil
	}
	return apperrors.NewForbiddenError("you do not have permission to delete this comment")
}

// CanModifyEvent allows the event creator to update or delete their event,
// and a same-college admin to do either.
func (s *AuthorizationService) CanModifyEvent(principal *Principal, event *models.Event) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.UserID == event.CreatedBy {
		return nil
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if principal.Role == models.RoleAdmin && principal.SameCollege(event.CollegeID) {
		return nil
	}
	return apperrors.NewForbiddenError("you do not have permission to modify this event")
}

// CanManageUser gates admin operations on another user's account (status
// changes, removal). Admins manage users of their own college only; a super
// admin manages any user; admins never act on their own account through the
// admin surface.
func (s *AuthorizationService) CanManageUser(principal *Principal, target *models.User) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		return apperrors.NewForbiddenError("admin role required")
	}
	if principal.UserID == target.ID {
		return apperrors.NewCustomError(apperrors.ErrAdminSelfAction, "admins cannot remove or change the status of their own account")
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if target.CollegeID == nil || !principal.SameCollege(*target.CollegeID) {
		return apperrors.NewForbiddenError("admins can only manage users of their own college")
	}
	return nil
}

// CanCreateUser gates admin account creation. Admins onboard members of
// their own college only; a super admin onboards into any college. Superadmin
// accounts are never created through this surface.
func (s *AuthorizationService) CanCreateUser(principal *Principal, role models.RoleType, collegeID int64) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		return apperrors.NewForbiddenError("admin role required")
	}
	if role == models.RoleSuperAdmin {
		return apperrors.NewForbiddenError("superadmin accounts cannot be created")
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if !principal.SameCollege(collegeID) {
		return apperrors.NewForbiddenError("admins can only create users in their own college")
	}
	return nil
}

// CanViewCollegeDonations allows a college's own admin, or a super admin, to
// list that college's donations.
func (s *AuthorizationService) CanViewCollegeDonations(principal *Principal, collegeID int64) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.IsSuperAdmin() {
		return nil
	}
	if principal.Role == models.RoleAdmin && principal.SameCollege(collegeID) {
		return nil
	}
	return apperrors.NewForbiddenError("you do not have permission to view this college's donations")
}

// ValidateFollow rejects self-follows before storage is touched
func (s *AuthorizationService) ValidateFollow(principal *Principal, targetUserID int64) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}
	if principal.UserID == targetUserID {
		return apperrors.NewCustomError(apperrors.ErrSelfFollow, "users cannot follow themselves")
	}
	return nil
}
