package domain

// TopicUserRegistered is published after a successful sign-up.
const TopicUserRegistered = "user.registered"

// UserRegistered is the payload of TopicUserRegistered.
type UserRegistered struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
