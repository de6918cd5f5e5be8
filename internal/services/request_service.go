package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"climate-repair/internal/authz"
	"climate-repair/internal/dto"
	"climate-repair/internal/entities"
	"climate-repair/internal/repositories"
	apperrors "climate-repair/pkg/errors"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, userID uint64, role string, listFilter dto.RequestListFilterDTO) ([]dto.RequestDTO, error)
	GetRequestView(ctx context.Context, userID uint64, role string, requestID uint64) (*dto.RequestViewDTO, error)
	CreateRequest(ctx context.Context, userID uint64, role string, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	AssignMaster(ctx context.Context, role string, payload dto.AssignMasterDTO) error
	UpdateStatus(ctx context.Context, userID uint64, role string, payload dto.UpdateStatusDTO) error
	AddComment(ctx context.Context, userID uint64, role string, payload dto.AddCommentDTO) error
}

type requestService struct {
	requestRepo repositories.RequestRepositoryInterface
	commentRepo repositories.CommentRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	dictService DictionaryServiceInterface
	baseURL     string
	logger      *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	dictService DictionaryServiceInterface,
	baseURL string,
	logger *zap.Logger,
) RequestServiceInterface {
	return &requestService{
		requestRepo: requestRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		dictService: dictService,
		baseURL:     baseURL,
		logger:      logger,
	}
}

func toRequestDTO(d *entities.RequestDetails) dto.RequestDTO {
	out := dto.RequestDTO{
		ID:                 d.ID,
		RequestNumber:      d.RequestNumber,
		StartDate:          d.StartDate.Format("2006-01-02"),
		ProblemDescription: d.ProblemDescription,
		PriorityLevel:      d.PriorityLevel,
		ClientID:           d.ClientID,
		ClientName:         d.ClientName,
		StatusID:           d.StatusID,
		StatusName:         d.StatusName,
		StatusColor:        d.StatusColor,
		TypeName:           d.TypeName,
		ModelName:          d.ModelName,
		CreatedAt:          d.CreatedAt.Format(time.RFC3339),
	}
	if d.CompletionDate.Valid {
		out.CompletionDate = null.StringFrom(d.CompletionDate.Time.Format("2006-01-02"))
	}
	if d.RepairParts.Valid {
		out.RepairParts = null.StringFrom(d.RepairParts.String)
	}
	if d.ClientPhone.Valid {
		out.ClientPhone = null.StringFrom(d.ClientPhone.String)
	}
	if d.MasterID.Valid {
		out.MasterID = null.Int64From(d.MasterID.Int64)
	}
	if d.MasterName.Valid {
		out.MasterName = null.StringFrom(d.MasterName.String)
	}
	return out
}

// canSeeRequest повторяет область видимости фильтра данных для одной
// конкретной заявки.
func canSeeRequest(filter authz.DataFilter, d *entities.RequestDetails) bool {
	switch filter.Scope {
	case authz.ScopeFull:
		return true
	case authz.ScopeClient:
		return d.ClientID == filter.SubjectUserID
	case authz.ScopeSpecialist:
		return d.MasterID.Valid && uint64(d.MasterID.Int64) == filter.SubjectUserID
	default:
		return false
	}
}

func (s *requestService) GetRequests(ctx context.Context, userID uint64, role string, listFilter dto.RequestListFilterDTO) ([]dto.RequestDTO, error) {
	filter := authz.GetDataFilters(userID, role)
	details, err := s.requestRepo.GetRequests(ctx, filter, listFilter)
	if err != nil {
		return nil, err
	}
	list := make([]dto.RequestDTO, 0, len(details))
	for i := range details {
		list = append(list, toRequestDTO(&details[i]))
	}
	return list, nil
}

// GetRequestView собирает карточку заявки: саму заявку, комментарии,
// справочники для форм и QR-код на страницу оценки для завершённых.
func (s *requestService) GetRequestView(ctx context.Context, userID uint64, role string, requestID uint64) (*dto.RequestViewDTO, error) {
	details, err := s.requestRepo.FindRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	filter := authz.GetDataFilters(userID, role)
	if !canSeeRequest(filter, details) {
		return nil, apperrors.ErrForbidden
	}

	comments, err := s.commentRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	view := &dto.RequestViewDTO{Request: toRequestDTO(details)}
	for _, c := range comments {
		view.Comments = append(view.Comments, dto.CommentDTO{
			ID:         c.ID,
			RequestID:  c.RequestID,
			Message:    c.Message,
			AuthorName: c.AuthorName,
			AuthorRole: c.AuthorRole,
			CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		})
	}

	// Справочники нужны только тем, кто управляет заявкой.
	if filter.Scope == authz.ScopeFull {
		specialists, err := s.userRepo.GetActiveSpecialists(ctx)
		if err != nil {
			return nil, err
		}
		for _, sp := range specialists {
			view.Specialists = append(view.Specialists, dto.UserDTO{ID: sp.ID, FullName: sp.FullName, Role: sp.Role})
		}
	}
	statuses, err := s.dictService.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	view.Statuses = statuses

	if details.StatusID == entities.StatusCompleted {
		qr, err := s.feedbackQRCode(details.ID)
		if err != nil {
			// Карточка живёт и без QR-кода.
			s.logger.Warn("Не удалось построить QR-код", zap.Uint64("request_id", details.ID), zap.Error(err))
		} else {
			view.QRCodeData = qr
		}
	}
	return view, nil
}

// feedbackQRCode кодирует ссылку на страницу оценки качества в PNG
// и отдаёт его как data-URL для <img>.
func (s *requestService) feedbackQRCode(requestID uint64) (string, error) {
	url := fmt.Sprintf("%s/feedback/%d", s.baseURL, requestID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("кодирование QR: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (s *requestService) CreateRequest(ctx context.Context, userID uint64, role string, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	if authz.ParseRole(role) != authz.RoleClient {
		return nil, apperrors.ErrForbidden
	}
	id, err := s.requestRepo.CreateRequest(ctx, userID, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Создана заявка", zap.Uint64("request_id", id), zap.Uint64("client_id", userID))

	details, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRequestDTO(details)
	return &out, nil
}

// AssignMaster доступен ролям с полной видимостью, кроме заказчиков
// и специалистов.
func (s *requestService) AssignMaster(ctx context.Context, role string, payload dto.AssignMasterDTO) error {
	if authz.GetDataFilters(0, role).Scope != authz.ScopeFull {
		return apperrors.ErrForbidden
	}
	master, err := s.userRepo.FindUserByID(ctx, payload.MasterID)
	if err != nil {
		return err
	}
	if authz.ParseRole(master.Role) != authz.RoleSpecialist || !master.IsActive {
		return apperrors.NewInvalidInputError("пользователь %d не является активным специалистом", payload.MasterID)
	}
	if err := s.requestRepo.AssignMaster(ctx, payload.RequestID, payload.MasterID); err != nil {
		return err
	}
	s.logger.Info("Назначен специалист",
		zap.Uint64("request_id", payload.RequestID),
		zap.Uint64("master_id", payload.MasterID))
	return nil
}

// UpdateStatus меняет статус заявки. Специалист может менять статус
// только своих заявок; заказчику смена статуса недоступна.
func (s *requestService) UpdateStatus(ctx context.Context, userID uint64, role string, payload dto.UpdateStatusDTO) error {
	if payload.StatusID < entities.StatusNew || payload.StatusID > entities.StatusCompleted {
		return apperrors.NewInvalidInputError("неизвестный статус %d", payload.StatusID)
	}

	filter := authz.GetDataFilters(userID, role)
	switch filter.Scope {
	case authz.ScopeFull:
	case authz.ScopeSpecialist:
		details, err := s.requestRepo.FindRequest(ctx, payload.RequestID)
		if err != nil {
			return err
		}
		if !canSeeRequest(filter, details) {
			return apperrors.ErrForbidden
		}
	default:
		return apperrors.ErrForbidden
	}

	completed := payload.StatusID == entities.StatusCompleted
	if err := s.requestRepo.UpdateStatus(ctx, payload.RequestID, payload.StatusID, completed); err != nil {
		return err
	}
	s.logger.Info("Изменён статус заявки",
		zap.Uint64("request_id", payload.RequestID),
		zap.Uint64("status_id", payload.StatusID))
	return nil
}

// AddComment разрешён всем, кто видит заявку.
func (s *requestService) AddComment(ctx context.Context, userID uint64, role string, payload dto.AddCommentDTO) error {
	details, err := s.requestRepo.FindRequest(ctx, payload.RequestID)
	if err != nil {
		return err
	}
	if !canSeeRequest(authz.GetDataFilters(userID, role), details) {
		return apperrors.ErrForbidden
	}
	return s.commentRepo.Create(ctx, payload.RequestID, userID, payload.Message)
}
