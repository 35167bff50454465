package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sujeet/alumnisphere/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestNewPostResponseComputesDerivedFields(t *testing.T) {
	now := time.Now()
	post := &models.Post{ID: 5, CollegeID: 1, AuthorID: 7, Content: strPtr("hello"), CreatedAt: now, UpdatedAt: now}
	author := &models.User{ID: 7, Name: "Jane", Email: "jane@tech.edu", RoleType: models.RoleAlumnus}

	resp := NewPostResponse(post, author, 3, 2, true)

	assert.Equal(t, int64(3), resp.LikesCount)
	assert.Equal(t, int64(2), resp.CommentsCount)
	assert.True(t, resp.LikedByCurrentUser)
	require.NotNil(t, resp.Author)
	assert.Equal(t, int64(7), resp.Author.ID)
}

func TestNewPostResponseAnonymousDefaultsToNotLiked(t *testing.T) {
	post := &models.Post{ID: 5, CollegeID: 1, AuthorID: 7}

	resp := NewPostResponse(post, nil, 0, 0, false)

	assert.False(t, resp.LikedByCurrentUser)
	assert.Nil(t, resp.Author)
	assert.Equal(t, int64(0), resp.LikesCount)
}

func TestNewEventResponseAnonymousDefaultsToNotAttending(t *testing.T) {
	event := &models.Event{ID: 9, CollegeID: 1, Title: "Meetup", EventDate: time.Now()}

	resp := NewEventResponse(event, nil, 25, false)

	assert.False(t, resp.IsAttending)
	assert.Equal(t, int64(25), resp.AttendeesCount)
	assert.Nil(t, resp.CreatedBy)
}

func TestNewUserProfileResponseCarriesCounts(t *testing.T) {
	user := &models.User{ID: 1, Name: "Jane", Email: "jane@tech.edu", RoleType: models.RoleStudent, Status: models.UserStatusActive}

	resp := NewUserProfileResponse(user, 12, 8, true)

	require.NotNil(t, resp)
	assert.Equal(t, int64(12), resp.FollowersCount)
	assert.Equal(t, int64(8), resp.FollowingCount)
	assert.True(t, resp.FollowedByCurrentUser)
	assert.Equal(t, "STUDENT", resp.Role)
}
