package components

import (
	"corral-store/internal/infra/repository"
	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAnimalRepository,
			fx.As(new(commands.AnimalRepository)),
			fx.As(new(queries.AnimalReadStore)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewSaleRepository,
			fx.As(new(commands.SaleRepository)),
			fx.As(new(queries.SaleReadStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
