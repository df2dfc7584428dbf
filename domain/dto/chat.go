package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
