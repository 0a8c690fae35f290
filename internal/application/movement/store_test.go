package movement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
)

func TestStore_OpenGetClose(t *testing.T) {
	store := movement.NewStore(&fakeMovements{}, &fakeDirectory{}, time.Minute, nil)

	s := store.Open(testToken, "VENTA")
	got, err := store.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, store.Close(s.ID))
	_, err = store.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, store.Close(s.ID), domain.ErrSessionNotFound, "cerrar dos veces no es válido")
}

func TestStore_PropiedadPorToken(t *testing.T) {
	store := movement.NewStore(&fakeMovements{}, &fakeDirectory{}, time.Minute, nil)
	s := store.Open(testToken, "COMPRA")

	assert.True(t, s.OwnedBy(testToken))
	assert.False(t, s.OwnedBy("token-de-otro"), "una sesión ajena no se puede operar")
}

// El janitor cierra solo las sesiones pasadas de TTL; operar sobre una sesión
// cerrada falla con ErrSessionClosed.
func TestStore_SweepCierraSoloLasViejas(t *testing.T) {
	store := movement.NewStore(&fakeMovements{}, &fakeDirectory{}, 10*time.Minute, nil)

	stale := store.Open(testToken, "COMPRA")
	waitPartiesLoaded(t, stale)

	assert.Equal(t, 0, store.Sweep(time.Now().Add(5*time.Minute)), "dentro del TTL no se barre nada")

	n := store.Sweep(time.Now().Add(15 * time.Minute))
	assert.Equal(t, 1, n, "pasado el TTL la sesión está abandonada")

	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, stale.AddItem("W2"), domain.ErrSessionClosed)
}
