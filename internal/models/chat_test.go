package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_CharacterMatchesPartner(t *testing.T) {
	c := Character{ID: "c1", Nombre: "Aiko", Nacionalidad: "Japón", Genero: "F"}
	p := Partner{Nombre: "Aiko", Nacionalidad: "Japón", IdiomaObjetivo: "japonés"}

	assert.Equal(t, c.Identity(), p.Identity())
	assert.NotEqual(t, c.Identity(), Partner{Nombre: "Aiko", Nacionalidad: "Perú"}.Identity())
}

func TestSender_Valid(t *testing.T) {
	assert.True(t, SenderUser.Valid())
	assert.True(t, SenderAI.Valid())
	assert.False(t, Sender("bot").Valid())
}

func TestSortMessages(t *testing.T) {
	t0 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "3", CreatedAt: t0.Add(2 * time.Minute)},
		{ID: "1", CreatedAt: t0},
		{ID: "2a", CreatedAt: t0.Add(time.Minute)},
		{ID: "2b", CreatedAt: t0.Add(time.Minute)},
	}

	SortMessages(msgs)

	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"1", "2a", "2b", "3"}, ids)
}
