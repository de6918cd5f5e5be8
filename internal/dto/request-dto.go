package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	TypeID             uint64 `json:"type_id" validate:"required"`
	ModelID            uint64 `json:"model_id" validate:"required"`
	ProblemDescription string `json:"problem_description" validate:"required,min=5"`
	PriorityLevel      int    `json:"priority_level" validate:"omitempty,min=1,max=3"`
}

type AssignMasterDTO struct {
	RequestID uint64 `json:"request_id" validate:"required"`
	MasterID  uint64 `json:"master_id" validate:"required"`
}

type UpdateStatusDTO struct {
	RequestID uint64 `json:"request_id" validate:"required"`
	StatusID  uint64 `json:"status_id" validate:"required"`
}

type AddCommentDTO struct {
	RequestID uint64 `json:"request_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type RequestListFilterDTO struct {
	Search   string `query:"search"`
	StatusID uint64 `query:"status"`
}

type RequestDTO struct {
	ID                 uint64      `json:"id"`
	RequestNumber      string      `json:"request_number"`
	StartDate          string      `json:"start_date"`
	CompletionDate     null.String `json:"completion_date"`
	ProblemDescription string      `json:"problem_description"`
	RepairParts        null.String `json:"repair_parts"`
	PriorityLevel      int         `json:"priority_level"`
	ClientID           uint64      `json:"client_id"`
	ClientName         string      `json:"client_name"`
	ClientPhone        null.String `json:"client_phone"`
	MasterID           null.Int64  `json:"master_id"`
	MasterName         null.String `json:"master_name"`
	StatusID           uint64      `json:"status_id"`
	StatusName         string      `json:"status_name"`
	StatusColor        string      `json:"status_color"`
	TypeName           string      `json:"type_name"`
	ModelName          string      `json:"model_name"`
	CreatedAt          string      `json:"created_at"`
}

// RequestViewDTO — карточка заявки: комментарии, справочники для форм и
// QR-код на страницу оценки качества (только для завершённых).
type RequestViewDTO struct {
	Request     RequestDTO   `json:"request"`
	Comments    []CommentDTO `json:"comments"`
	Specialists []UserDTO    `json:"specialists"`
	Statuses    []StatusDTO  `json:"statuses"`
	QRCodeData  string       `json:"qr_code_data,omitempty"`
}

type CommentDTO struct {
	ID         uint64 `json:"id"`
	RequestID  uint64 `json:"request_id"`
	Message    string `json:"message"`
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
	CreatedAt  string `json:"created_at"`
}

type UserDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type StatusDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type EquipmentTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type EquipmentModelDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	TypeID       uint64 `json:"type_id"`
	Manufacturer string `json:"manufacturer"`
}

type RateQualityDTO struct {
	Rating  string `json:"rating" validate:"required,oneof=Хорошо Нормально Плохо"`
	Comment string `json:"comment"`
}
