package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the profile document keyed by the identity provider's uid. The
// identity tuple (uid, email, display name, photo) comes from the session
// token; everything else is progress state owned by this service.
type User struct {
	UID              string    `bson:"_id" json:"uid"`
	Email            string    `bson:"email" json:"email"`
	DisplayName      string    `bson:"display_name" json:"displayName"`
	PhotoURL         string    `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Role             string    `bson:"role" json:"role"`
	Points           int       `bson:"points" json:"points"`
	Level            int       `bson:"level" json:"level"`
	QuizzesCompleted int       `bson:"quizzes_completed" json:"quizzesCompleted"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	LastActiveAt     time.Time `bson:"last_active_at" json:"lastActiveAt"`
}

// PointsPerLevel is how many points advance a user one level.
const PointsPerLevel = 100

// LevelForPoints maps a points total to a level, starting at level 1.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}
