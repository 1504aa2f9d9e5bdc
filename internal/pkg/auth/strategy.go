package auth

import "time"

type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	TTL() time.Duration
	Name() string
}

type Options struct {
	TTL time.Duration
}
