package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository       *CollegeRepository
	UserRepository          *UserRepository
	PostRepository          *PostRepository
	CommentRepository       *CommentRepository
	PostLikeRepository      *PostLikeRepository
	EventRepository         *EventRepository
	EventAttendeeRepository *EventAttendeeRepository
	UserFollowRepository    *UserFollowRepository
	DonationRepository      *DonationRepository
	RefreshTokenRepository  *RefreshTokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:       NewCollegeRepository(db),
		UserRepository:          NewUserRepository(db),
		PostRepository:          NewPostRepository(db),
		CommentRepository:       NewCommentRepository(db),
		PostLikeRepository:      NewPostLikeRepository(db),
		EventRepository:         NewEventRepository(db),
		EventAttendeeRepository: NewEventAttendeeRepository(db),
		UserFollowRepository:    NewUserFollowRepository(db),
		DonationRepository:      NewDonationRepository(db),
		RefreshTokenRepository:  NewRefreshTokenRepository(db),
	}
}
