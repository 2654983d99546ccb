package anatomy

type AnatomyRequest struct {
	Structure string `json:"structure"`
}

type AnatomyResponse struct {
	Description string `json:"description"`
	BoneName    string `json:"boneName,omitempty"`
}

type StructureListResponse struct {
	Structures []string `json:"structures"`
}

type OverrideRequest struct {
	Description string `json:"description" validate:"required,min=10,max=5000"`
}

type OverrideResponse struct {
	Structure   string `json:"structure"`
	Description string `json:"description"`
	UpdatedBy   string `json:"updatedBy"`
	UpdatedAt   string `json:"updatedAt"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
