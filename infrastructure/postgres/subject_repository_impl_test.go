package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres/testdb"
)

func newSubject(t *testing.T, repo repositories.SubjectRepository, owner, name string, tasks ...string) *models.Subject {
	t.Helper()
	ctx := context.Background()

	subject := &models.Subject{Owner: owner, OwnerKind: models.OwnerKindEmail, Name: name}
	require.NoError(t, repo.Create(ctx, subject))

	for _, desc := range tasks {
		require.NoError(t, repo.AddTask(ctx, subject.ID, &models.Task{Description: desc, DueDate: "2026-10-16"}))
	}

	loaded, err := repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	return loaded
}

func TestAddTaskKeepsInsertionOrder(t *testing.T) {
	repo := postgres.NewSubjectRepository(testdb.New(t))
	subject := newSubject(t, repo, "a@x.com", "Cálculo", "first", "second", "third")

	require.Len(t, subject.Tasks, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, subject.Tasks[i].Description)
		assert.Equal(t, i+1, subject.Tasks[i].Position)
		assert.False(t, subject.Tasks[i].Completed)
		assert.False(t, subject.Tasks[i].ReminderSent)
	}

	// deleting the middle one does not renumber the others
	ctx := context.Background()
	require.NoError(t, repo.DeleteTask(ctx, subject.ID, subject.Tasks[1].ID))
	require.NoError(t, repo.AddTask(ctx, subject.ID, &models.Task{Description: "fourth", DueDate: "2026-10-20"}))

	reloaded, err := repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Tasks, 3)
	assert.Equal(t, "first", reloaded.Tasks[0].Description)
	assert.Equal(t, "third", reloaded.Tasks[1].Description)
	assert.Equal(t, "fourth", reloaded.Tasks[2].Description)
	assert.Equal(t, 4, reloaded.Tasks[2].Position)
}

func TestAddTaskUnknownSubject(t *testing.T) {
	repo := postgres.NewSubjectRepository(testdb.New(t))
	err := repo.AddTask(context.Background(), uuid.New(), &models.Task{Description: "x", DueDate: "2026-10-16"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSaveNeverResetsReminderSent(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	subject := newSubject(t, repo, "a@x.com", "Física", "Essay")
	taskID := subject.Tasks[0].ID

	require.NoError(t, repo.MarkReminderSent(ctx, subject.ID, taskID))

	// stale snapshot still says false
	subject.Tasks[0].ReminderSent = false
	require.NoError(t, repo.Save(ctx, subject))

	task, err := repo.GetTask(ctx, subject.ID, taskID)
	require.NoError(t, err)
	assert.True(t, task.ReminderSent)
}

func TestSaveKeepsUserEditsMadeAfterLoad(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	snapshot := newSubject(t, repo, "a@x.com", "Física", "Essay")
	taskID := snapshot.Tasks[0].ID

	desc := "Essay final"
	due := "2026-10-20"
	completed := true
	_, err := repo.UpdateTask(ctx, snapshot.ID, taskID, repositories.TaskChanges{
		Description: &desc,
		DueDate:     &due,
		Completed:   &completed,
	})
	require.NoError(t, err)

	snapshot.Tasks[0].ReminderSent = true
	require.NoError(t, repo.Save(ctx, snapshot))

	task, err := repo.GetTask(ctx, snapshot.ID, taskID)
	require.NoError(t, err)
	assert.True(t, task.ReminderSent)
	assert.Equal(t, "Essay final", task.Description)
	assert.Equal(t, "2026-10-20", task.DueDate)
	assert.True(t, task.Completed)
}

func TestMarkReminderSentOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	subject := newSubject(t, repo, "a@x.com", "Física", "Essay")
	taskID := subject.Tasks[0].ID

	require.NoError(t, repo.MarkReminderSent(ctx, subject.ID, taskID))
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, subject.ID, taskID), repositories.ErrAlreadyMarked)
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, subject.ID, uuid.New()), repositories.ErrNotFound)
}

func TestSaveDoesNotResurrectDeletedTasks(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	subject := newSubject(t, repo, "a@x.com", "Química", "keep", "drop")

	require.NoError(t, repo.DeleteTask(ctx, subject.ID, subject.Tasks[1].ID))

	subject.Tasks[0].ReminderSent = true
	subject.Tasks[1].ReminderSent = true
	require.NoError(t, repo.Save(ctx, subject))

	reloaded, err := repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Tasks, 1)
	assert.Equal(t, "keep", reloaded.Tasks[0].Description)
	assert.True(t, reloaded.Tasks[0].ReminderSent)
}

func TestSaveMissingSubject(t *testing.T) {
	repo := postgres.NewSubjectRepository(testdb.New(t))
	err := repo.Save(context.Background(), &models.Subject{ID: uuid.New(), Name: "ghost"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteCascadesTasks(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := postgres.NewSubjectRepository(db)
	subject := newSubject(t, repo, "a@x.com", "Historia", "one", "two")

	require.NoError(t, repo.Delete(ctx, subject.ID))

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Where("subject_id = ?", subject.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err := repo.GetByID(ctx, subject.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, subject.ID), repositories.ErrNotFound)
}

func TestGetByOwnerFiltersExactly(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	newSubject(t, repo, "a@x.com", "Mine")
	newSubject(t, repo, "b@x.com", "Theirs")

	mine, err := repo.GetByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateTaskOnlyTouchesUserFields(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSubjectRepository(testdb.New(t))
	subject := newSubject(t, repo, "a@x.com", "Inglés", "draft")
	taskID := subject.Tasks[0].ID
	require.NoError(t, repo.MarkReminderSent(ctx, subject.ID, taskID))

	desc := "final essay"
	task, err := repo.UpdateTask(ctx, subject.ID, taskID, repositories.TaskChanges{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "final essay", task.Description)
	assert.Equal(t, "2026-10-16", task.DueDate)
	assert.True(t, task.ReminderSent)

	_, err = repo.UpdateTask(ctx, uuid.New(), taskID, repositories.TaskChanges{Description: &desc})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
