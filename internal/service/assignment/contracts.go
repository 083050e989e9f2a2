//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/ports/assignmenttx"
)

type assignmentRepository interface {
	WithTx(ctx context.Context, fn func(tx assignmenttx.Repository) error) error
}

// Notifier hands notifications to the delivery channel.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
