package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agendaja/agenda-api/store"
)

func TestSession_LoginSetsMockUserByRole(t *testing.T) {
	s := store.NewSession()

	_, ok := s.Current()
	assert.False(t, ok)

	u := s.Login(store.RoleCliente)
	assert.Equal(t, "João Cliente", u.Name)
	assert.Equal(t, "cliente@email.com", u.Email)

	u = s.Login(store.RolePrestador)
	assert.Equal(t, "Maria Prestadora", u.Name)
	assert.Equal(t, "prestador@email.com", u.Email)

	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, store.RolePrestador, current.Role)
}

func TestSession_LogoutClearsUser(t *testing.T) {
	s := store.NewSession()
	s.Login(store.RoleCliente)

	var last *store.SessionUser
	s.Subscribe(func(u *store.SessionUser) {
		last = u
	})
	assert.NotNil(t, last)

	s.Logout()
	assert.Nil(t, last)

	_, ok := s.Current()
	assert.False(t, ok)
}
