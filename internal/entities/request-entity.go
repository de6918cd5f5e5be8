package entities

import (
	"database/sql"
	"time"
)

// Идентификаторы статусов фиксированы миграцией и сидером.
const (
	StatusNew           uint64 = 1
	StatusInProgress    uint64 = 2
	StatusAwaitingParts uint64 = 3
	StatusReadyForPick  uint64 = 4
	StatusCompleted     uint64 = 5
)

// ActiveStatusIDs — заявка считается активной в этих статусах.
var ActiveStatusIDs = []uint64{StatusNew, StatusInProgress, StatusAwaitingParts}

type RepairRequest struct {
	ID                 uint64       `json:"id"`
	RequestNumber      string       `json:"request_number"`
	StartDate          time.Time    `json:"start_date"`
	CompletionDate     sql.NullTime `json:"-"`
	ProblemDescription string       `json:"problem_description"`
	RepairParts        sql.NullString `json:"-"`
	PriorityLevel      int          `json:"priority_level"`
	ClientID           uint64       `json:"client_id"`
	MasterID           sql.NullInt64 `json:"-"`
	StatusID           uint64       `json:"status_id"`
	TypeID             uint64       `json:"type_id"`
	ModelID            uint64       `json:"model_id"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          sql.NullTime `json:"-"`
}

// RequestDetails — заявка с джойнами справочников для карточки и списков.
type RequestDetails struct {
	RepairRequest
	ClientName  string         `json:"client_name"`
	ClientPhone sql.NullString `json:"-"`
	MasterName  sql.NullString `json:"-"`
	TypeName    string         `json:"type_name"`
	ModelName   string         `json:"model_name"`
	StatusName  string         `json:"status_name"`
	StatusColor string         `json:"status_color"`
}
