package services

// Services defined in this package:
// - AuthService: login, token refresh, current-user lookup
// - CollegeService: college registration with its initial admin, listing
// - UserService: profiles, profile pictures, the follow graph
// - PostService: the college feed, likes
// - CommentService: comments on posts
// - EventService: events and attendance
// - DonationService: donation lifecycle
// - SearchService: member search within a college
// - AdminService: member moderation and account removal
