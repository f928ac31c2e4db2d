package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ ports.CallerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAsCaller abre una transacción con el rol "authenticated" y los claims del usuario,
// igual que hace PostgREST con el token del cliente, así auth.uid() y las políticas RLS
// de NEGOCIO, PRODUCTO y POSTS ven al usuario real. Hace Commit si fn no falla.
func (r *TxRunner) RunAsCaller(ctx context.Context, caller entity.Caller, fn func(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	postRepo repository.PostRepository,
) error) error {
	claims, err := callerClaims(caller)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := impersonate(ctx, tx, claims, caller.ID); err != nil {
		return err
	}

	if err := fn(NewBusinessRepository(tx), NewProductRepository(tx), NewPostRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// callerClaims arma request.jwt.claims a partir de la identidad ya verificada.
func callerClaims(caller entity.Caller) (string, error) {
	b, err := json.Marshal(map[string]string{
		"sub":   caller.ID,
		"email": caller.Email,
		"role":  "authenticated",
	})
	if err != nil {
		return "", fmt.Errorf("encode claims: %w", err)
	}
	return string(b), nil
}

func impersonate(ctx context.Context, tx pgx.Tx, claims, sub string) error {
	// set_config(..., true) vale solo para esta transacción.
	if _, err := tx.Exec(ctx,
		`SELECT set_config('request.jwt.claims', $1, true), set_config('request.jwt.claim.sub', $2, true)`,
		claims, sub,
	); err != nil {
		return fmt.Errorf("set jwt claims: %w", err)
	}
	if _, err := tx.Exec(ctx, `SET LOCAL ROLE authenticated`); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}
