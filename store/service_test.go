package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agendaja/agenda-api/store"
)

func TestServiceStore_AddAndRemove(t *testing.T) {
	s := store.NewServiceStore()

	first := s.Add(store.Service{
		Name: "Serviço de manicure excelente",
		Variations: []store.Variation{
			{Name: "Pé", Price: 20.0, Duration: 30},
			{Name: "Mão com pintura", Price: 35.0, Duration: 60},
		},
	})
	second := s.Add(store.Service{Name: "Eletricista"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Len(t, s.List()[0].Variations, 2)

	assert.True(t, s.Remove(first.ID))
	list := s.List()
	assert.Len(t, list, 1)
	assert.Equal(t, "Eletricista", list[0].Name)

	assert.False(t, s.Remove(99))
}
