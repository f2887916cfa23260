package lab

import "context"

type Repository interface {
	ListTechs(ctx context.Context) ([]Tech, error)
	Results(ctx context.Context, techID int) ([]ResultRow, error)
}
