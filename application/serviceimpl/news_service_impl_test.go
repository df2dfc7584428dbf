package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres/testdb"
)

func TestNewsService(t *testing.T) {
	svc := NewNewsService(postgres.NewNewsRepository(testdb.New(t)))
	ctx := context.Background()

	news, err := svc.CreateNews(ctx, &dto.CreateNewsRequest{Title: " Inscripciones Abiertas ", Content: "Del 1 al 5"})
	require.NoError(t, err)
	assert.Equal(t, "Inscripciones Abiertas", news.Title)
	assert.Equal(t, "inscripciones-abiertas", news.Slug)

	items, total, err := svc.ListNews(ctx, -3, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, items, 1)

	require.NoError(t, svc.DeleteNews(ctx, news.ID))
	assert.ErrorIs(t, svc.DeleteNews(ctx, uuid.New()), services.ErrNewsNotFound)
}

type stubModel struct {
	reply string
	err   error
	got   string
}

func (m *stubModel) Reply(_ context.Context, message string) (string, error) {
	m.got = message
	return m.reply, m.err
}

func TestChatService(t *testing.T) {
	off := NewChatService(nil)
	assert.False(t, off.Enabled())
	_, err := off.Ask(context.Background(), "hola")
	assert.ErrorIs(t, err, services.ErrChatUnavailable)

	model := &stubModel{reply: "¡Hola!"}
	on := NewChatService(model)
	assert.True(t, on.Enabled())
	reply, err := on.Ask(context.Background(), "  hola ")
	require.NoError(t, err)
	assert.Equal(t, "¡Hola!", reply)
	assert.Equal(t, "hola", model.got)

	model.err = errors.New("quota")
	_, err = on.Ask(context.Background(), "hola")
	assert.Error(t, err)
}
