package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-sync/internal/collection"
	"todo-sync/internal/model"
)

func TestMemoryRepo_InsertListDelete(t *testing.T) {
	repo := New()
	ctx := context.Background()

	a, err := repo.InsertTask(ctx, model.Task{ID: model.NumberID(1), Title: "a"})
	require.NoError(t, err)
	_, err = repo.InsertTask(ctx, model.Task{ID: model.StringID("b"), Title: "b"})
	require.NoError(t, err)

	_, err = repo.InsertTask(ctx, model.Task{ID: model.StringID("1"), Title: "dup"})
	assert.ErrorIs(t, err, collection.ErrDuplicateID)

	list, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0])
	assert.Equal(t, "b", list[1].Title)

	require.NoError(t, repo.DeleteTask(ctx, model.StringID("1")))
	assert.ErrorIs(t, repo.DeleteTask(ctx, model.StringID("1")), collection.ErrTaskNotFound)

	list, _ = repo.ListTasks(ctx)
	assert.Len(t, list, 1)
}

func TestMemoryRepo_Replace(t *testing.T) {
	repo := New(model.Task{ID: model.NumberID(7), Title: "a"})
	ctx := context.Background()

	got, err := repo.ReplaceTask(ctx, model.NumberID(7), model.Task{ID: model.NumberID(7), Title: "a", Done: true})
	require.NoError(t, err)
	assert.True(t, got.Done)

	_, err = repo.ReplaceTask(ctx, model.NumberID(8), model.Task{})
	assert.ErrorIs(t, err, collection.ErrTaskNotFound)
}

func TestMemoryRepo_ListReturnsCopy(t *testing.T) {
	repo := New(model.Task{ID: model.NumberID(1), Title: "a"})
	ctx := context.Background()

	list, _ := repo.ListTasks(ctx)
	list[0].Title = "mutated"

	again, _ := repo.ListTasks(ctx)
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryRepo_ReplaceKeepsStoredID(t *testing.T) {
	repo := New(model.Task{ID: model.NumberID(3), Title: "a"})

	got, err := repo.ReplaceTask(context.Background(), model.StringID("3"), model.Task{ID: model.StringID("other"), Title: "b"})
	require.NoError(t, err)
	assert.True(t, got.ID.IsNumber())
	assert.Equal(t, "3", got.ID.String())
	assert.Equal(t, "b", got.Title)
}
