package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

func newNegocioUC(tx *fakeTx) *NegocioUseCase {
	return NewNegocioUseCase(tx.businesses, tx.products, tx.posts)
}

func TestNegocioGetInfo(t *testing.T) {
	tx := newFakeTx()
	uc := newNegocioUC(tx)

	_, err := uc.GetInfo(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tx.businesses.info = &entity.BusinessInfo{Business: entity.Business{IDNegocio: 1, NombreNegocio: "Bodega"}}
	info, err := uc.GetInfo(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bodega", info.NombreNegocio)
}

func TestNegocioGetInfo_ErrorDelStore(t *testing.T) {
	tx := newFakeTx()
	tx.businesses.err = errors.New("timeout")

	_, err := newNegocioUC(tx).GetInfo(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestNegocioListProducts_VacioNoEsNil(t *testing.T) {
	list, err := newNegocioUC(newFakeTx()).ListProducts(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestNegocioListPosts_ResuelveDueno(t *testing.T) {
	tx := newFakeTx()
	tx.businesses.owners[3] = "v-1"
	tx.posts.byUser = map[string][]*entity.Post{"v-1": {{IDPost: 9}}}

	posts, err := newNegocioUC(tx).ListPosts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, []string{"v-1"}, tx.posts.asked)
}

func TestNegocioListPosts_NegocioInexistente(t *testing.T) {
	tx := newFakeTx()

	_, err := newNegocioUC(tx).ListPosts(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tx.posts.asked)
}
