package dto

import (
	"github.com/Fco200/UES-Academic-Helper/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:           user.ID,
		Identifier:   user.Identifier,
		OwnerKind:    string(user.OwnerKind),
		Role:         user.Role,
		University:   user.University,
		Career:       user.Career,
		PhotoURL:     user.PhotoURL,
		DisplayName:  user.DisplayName,
		Phone:        user.Phone,
		Bio:          user.Bio,
		Semester:     user.Semester,
		LinkedIn:     user.LinkedIn,
		Gender:       user.Gender,
		LastAccessAt: user.LastAccessAt,
		CreatedAt:    user.CreatedAt,
	}
}

// UpdateProfileRequestToFields keeps only the fields the request actually set
func UpdateProfileRequestToFields(req *UpdateProfileRequest) map[string]any {
	fields := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("display_name", req.DisplayName)
	set("university", req.University)
	set("career", req.Career)
	set("phone", req.Phone)
	set("bio", req.Bio)
	set("semester", req.Semester)
	set("linked_in", req.LinkedIn)
	set("gender", req.Gender)
	return fields
}

func TaskToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		SubjectID:    task.SubjectID,
		Description:  task.Description,
		DueDate:      task.DueDate,
		Completed:    task.Completed,
		ReminderSent: task.ReminderSent,
		CreatedAt:    task.CreatedAt,
	}
}

func SubjectToSubjectResponse(subject *models.Subject) *SubjectResponse {
	tasks := make([]TaskResponse, 0, len(subject.Tasks))
	for i := range subject.Tasks {
		tasks = append(tasks, TaskToTaskResponse(&subject.Tasks[i]))
	}
	return &SubjectResponse{
		ID:        subject.ID,
		Owner:     subject.Owner,
		OwnerKind: string(subject.OwnerKind),
		Name:      subject.Name,
		Tasks:     tasks,
		CreatedAt: subject.CreatedAt,
	}
}

func SubjectsToResponses(subjects []*models.Subject) []*SubjectResponse {
	result := make([]*SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		result = append(result, SubjectToSubjectResponse(s))
	}
	return result
}

func NewsToNewsResponse(news *models.News) *NewsResponse {
	return &NewsResponse{
		ID:          news.ID,
		Title:       news.Title,
		Slug:        news.Slug,
		Content:     news.Content,
		ImageURL:    news.ImageURL,
		PublishedAt: news.PublishedAt,
	}
}
