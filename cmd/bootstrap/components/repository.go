package components

import (
	"bookhaven/internal/infra/repository"
	"bookhaven/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDB,
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(usecase.BookStore)),
			fx.As(new(usecase.BookCatalog)),
		),
		fx.Annotate(
			repository.NewLoanRepository,
			fx.As(new(usecase.LoanStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)

func NewDB(pool *pgxpool.Pool) repository.DB {
	return pool
}
