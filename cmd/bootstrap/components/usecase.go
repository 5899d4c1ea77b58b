package components

import (
	"bookhaven/internal/pkg/clock"
	"bookhaven/internal/pkg/config"
	"bookhaven/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewCatalogUseCase,
		usecase.NewAuthUseCase,
		func(bookStore usecase.BookStore, loanStore usecase.LoanStore, clk clock.Clock, cfg config.Config) usecase.LendingUseCase {
			return usecase.NewLendingUseCase(bookStore, loanStore, clk, cfg.Lending.MaxLoanPeriod)
		},
	),
)
