package repository

import "context"

// Repositories - набор репозиториев, привязанных к одной транзакции
type Repositories struct {
	Users       UserRepository
	Companies   CompanyRepository
	Memberships MembershipRepository
	Tasks       TaskRepository
	Invitations InvitationRepository
}

// Transactor выполняет fn в одной транзакции: коммит при nil, откат при ошибке
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
