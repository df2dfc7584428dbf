package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
)

type SubjectRepositoryImpl struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) repositories.SubjectRepository {
	return &SubjectRepositoryImpl{db: db}
}

func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *SubjectRepositoryImpl) FindAll(ctx context.Context) ([]*models.Subject, error) {
	var subjects []*models.Subject
	err := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		Order("created_at ASC, id ASC").
		Find(&subjects).Error
	return subjects, err
}

// Save persists the reminder state of the subject's tasks.
// Only reminder_sent = true is written, so a stale snapshot never reverts user edits,
// never resets a flag and never brings back a task deleted since it was loaded.
func (r *SubjectRepositoryImpl) Save(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subject{}).Where("id = ?", subject.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repositories.ErrNotFound
		}

		var sent []uuid.UUID
		for i := range subject.Tasks {
			if subject.Tasks[i].ReminderSent {
				sent = append(sent, subject.Tasks[i].ID)
			}
		}
		if len(sent) == 0 {
			return nil
		}

		return tx.Model(&models.Task{}).
			Where("subject_id = ? AND id IN ? AND reminder_sent = ?", subject.ID, sent, false).
			Update("reminder_sent", true).Error
	})
}

func (r *SubjectRepositoryImpl) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Omit("Tasks").Create(subject).Error
}

func (r *SubjectRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).Preload("Tasks", orderedTasks).Where("id = ?", id).First(&subject).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &subject, nil
}

func (r *SubjectRepositoryImpl) GetByOwner(ctx context.Context, owner string) ([]*models.Subject, error) {
	var subjects []*models.Subject
	err := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		Where("owner = ?", owner).
		Order("created_at ASC, id ASC").
		Find(&subjects).Error
	return subjects, err
}

// Delete removes the subject and its tasks in one transaction
func (r *SubjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Subject{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}

// AddTask appends the task after the subject's last position
func (r *SubjectRepositoryImpl) AddTask(ctx context.Context, subjectID uuid.UUID, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subject{}).Where("id = ?", subjectID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repositories.ErrNotFound
		}

		var maxPosition int
		if err := tx.Model(&models.Task{}).
			Where("subject_id = ?", subjectID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		task.SubjectID = subjectID
		task.Position = maxPosition + 1
		task.Completed = false
		task.ReminderSent = false
		return tx.Create(task).Error
	})
}

func (r *SubjectRepositoryImpl) GetTask(ctx context.Context, subjectID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ? AND subject_id = ?", taskID, subjectID).First(&task).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// UpdateTask writes only the user-editable fields that are set
func (r *SubjectRepositoryImpl) UpdateTask(ctx context.Context, subjectID, taskID uuid.UUID, changes repositories.TaskChanges) (*models.Task, error) {
	fields := map[string]any{}
	if changes.Description != nil {
		fields["description"] = *changes.Description
	}
	if changes.DueDate != nil {
		fields["due_date"] = *changes.DueDate
	}
	if changes.Completed != nil {
		fields["completed"] = *changes.Completed
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Task{}).
			Where("id = ? AND subject_id = ?", taskID, subjectID).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, repositories.ErrNotFound
		}
	}

	return r.GetTask(ctx, subjectID, taskID)
}

func (r *SubjectRepositoryImpl) DeleteTask(ctx context.Context, subjectID, taskID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND subject_id = ?", taskID, subjectID).Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// MarkReminderSent flips the flag of one task. A task already flagged is
// reported as ErrAlreadyMarked so only one caller ever wins.
func (r *SubjectRepositoryImpl) MarkReminderSent(ctx context.Context, subjectID, taskID uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND subject_id = ? AND reminder_sent = ?", taskID, subjectID, false).
		Update("reminder_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	if _, err := r.GetTask(ctx, subjectID, taskID); err != nil {
		return err
	}
	return repositories.ErrAlreadyMarked
}
