package uow

import (
	"context"

	notification "prreview-service/internal/domain/ports/output/notification"
	pr "prreview-service/internal/domain/ports/output/pr"
	project "prreview-service/internal/domain/ports/output/project"
	user "prreview-service/internal/domain/ports/output/user"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() user.UserRepository
	ProjectRepository() project.ProjectRepository
	PRRepository() pr.PRRepository
	NotificationRepository() notification.NotificationRepository
}
