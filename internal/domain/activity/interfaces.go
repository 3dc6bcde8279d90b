package activity

import "context"

// Repository provides persistence for the activities document.
type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	SaveAll(ctx context.Context, activities []Activity) error
}
