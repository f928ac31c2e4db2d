package ports

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// CallerTxRunner ejecuta fn dentro de una transacción que actúa como el usuario que llama,
// de modo que las políticas RLS del store se aplican a las escrituras.
type CallerTxRunner interface {
	RunAsCaller(ctx context.Context, caller entity.Caller, fn func(
		businessRepo repository.BusinessRepository,
		productRepo repository.ProductRepository,
		postRepo repository.PostRepository,
	) error) error
}
