package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	timeSlotRepo "github.com/m04kA/SMC-RealtyService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
	"github.com/m04kA/SMC-RealtyService/pkg/ptr"
)

// Service сервис для управления слотами показов
type Service struct {
	timeSlotRepo TimeSlotRepository
	idGenerator  IDGenerator
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	timeSlotRepo TimeSlotRepository,
	idGenerator IDGenerator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		timeSlotRepo: timeSlotRepo,
		idGenerator:  idGenerator,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает слот показа объекта
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Create: agent=%s, property=%s, date=%s, time=%s-%s",
		req.AgentID, req.PropertyID, req.Date, req.StartTime, req.EndTime)

	slot, err := s.buildSlot(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.checkConflicts(ctx, slot); err != nil {
			return err
		}

		created, err := s.timeSlotRepo.Create(ctx, slot)
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		slot = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTimeSlotConflict) {
			s.logger.Warn("Create: %v", err)
		} else {
			s.logger.Error("Create: failed to create slot for property=%s: %v", req.PropertyID, err)
		}
		return nil, s.translateTxError(err)
	}

	s.logger.Info("Create: successfully created slot id=%s for property=%s", slot.ID, slot.PropertyID)
	return models.FromDomainTimeSlot(slot), nil
}

// Update частично обновляет слот
// Изменять слот может только создавший его агент, забронированные слоты не редактируются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Update: slot id=%s by agent=%s", id, req.AgentID)

	if id == "" || req.AgentID == "" {
		return nil, fmt.Errorf("%w: slot id and agent id are required", ErrInvalidInput)
	}

	var updated *domain.TimeSlot

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		slot, err := s.getOwnedSlot(ctx, id, req.AgentID)
		if err != nil {
			return err
		}

		if slot.IsBooked {
			return fmt.Errorf("%w: slot id=%s", ErrSlotBooked, id)
		}

		if req.IsEmpty() {
			updated = slot
			return nil
		}

		if err := applyUpdate(slot, req); err != nil {
			return err
		}

		if err := validateSlot(slot); err != nil {
			return err
		}
		slot.IsBooked = slot.IsFull()

		if err := s.checkConflicts(ctx, slot); err != nil {
			return err
		}

		if err := s.timeSlotRepo.Update(ctx, slot); err != nil {
			if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
				return ErrTimeSlotNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = slot
		return nil
	})
	if err != nil {
		s.logger.Warn("Update: failed to update slot id=%s: %v", id, err)
		return nil, s.translateTxError(err)
	}

	s.logger.Info("Update: successfully updated slot id=%s", id)
	return models.FromDomainTimeSlot(updated), nil
}

// Delete удаляет слот
// Удалить слот может только создавший его агент
func (s *Service) Delete(ctx context.Context, id string, agentID string) error {
	s.logger.Info("Delete: slot id=%s by agent=%s", id, agentID)

	if id == "" || agentID == "" {
		return fmt.Errorf("%w: slot id and agent id are required", ErrInvalidInput)
	}

	if _, err := s.getOwnedSlot(ctx, id, agentID); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}

	if err := s.timeSlotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("Delete: slot id=%s not found during deletion", id)
			return ErrTimeSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%s", id)
	return nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.TimeSlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%s", id)

	slot, err := s.timeSlotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlot(slot), nil
}

// GetByProperty получает все слоты объекта, упорядоченные по дате и времени
func (s *Service) GetByProperty(ctx context.Context, propertyID string) (*models.TimeSlotListResponse, error) {
	s.logger.Info("GetByProperty: fetching slots for property=%s", propertyID)

	if propertyID == "" {
		return nil, fmt.Errorf("%w: property id is required", ErrInvalidInput)
	}

	slots, err := s.timeSlotRepo.GetByPropertyWithFilter(ctx, domain.TimeSlotsFilter{PropertyID: propertyID})
	if err != nil {
		s.logger.Error("GetByProperty: repository error for property=%s: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProperty: successfully fetched %d slots for property=%s", len(slots), propertyID)
	return models.FromDomainTimeSlotList(slots), nil
}

// buildSlot собирает и проверяет новый слот из запроса
func (s *Service) buildSlot(req *models.CreateTimeSlotRequest) (*domain.TimeSlot, error) {
	if req.PropertyID == "" || req.AgentID == "" {
		return nil, fmt.Errorf("%w: property id and agent id are required", ErrInvalidInput)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseTime("startTime", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("endTime", req.EndTime)
	if err != nil {
		return nil, err
	}

	slot := &domain.TimeSlot{
		ID:               s.idGenerator.NewID(),
		PropertyID:       req.PropertyID,
		AgentID:          req.AgentID,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		IsBooked:         false,
		MaxAttendees:     ptr.ValueOr(req.MaxAttendees, domain.DefaultMaxAttendees),
		CurrentAttendees: 0,
	}

	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// getOwnedSlot получает слот и проверяет, что он принадлежит агенту
func (s *Service) getOwnedSlot(ctx context.Context, id, agentID string) (*domain.TimeSlot, error) {
	slot, err := s.timeSlotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !slot.IsOwnedBy(agentID) {
		return nil, fmt.Errorf("%w: slot id=%s belongs to another agent", ErrAccessDenied, id)
	}

	return slot, nil
}

// checkConflicts проверяет пересечение со слотами того же объекта в тот же день
func (s *Service) checkConflicts(ctx context.Context, slot *domain.TimeSlot) error {
	existing, err := s.timeSlotRepo.GetByPropertyWithFilter(ctx, domain.TimeSlotsFilter{
		PropertyID: slot.PropertyID,
		StartDate:  &slot.Date,
		EndDate:    &slot.Date,
	})
	if err != nil {
		return fmt.Errorf("%w: checkConflicts - repository error: %v", ErrInternal, err)
	}

	if other := findConflict(slot, existing); other != nil {
		return fmt.Errorf("%w: %s %s-%s overlaps slot id=%s %s-%s",
			ErrTimeSlotConflict, slot.Date, slot.StartTime, slot.EndTime, other.ID, other.StartTime, other.EndTime)
	}

	return nil
}

// applyUpdate применяет заданные поля запроса к слоту
func applyUpdate(slot *domain.TimeSlot, req *models.UpdateTimeSlotRequest) error {
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		slot.Date = date
	}
	if req.StartTime != nil {
		start, err := parseTime("startTime", *req.StartTime)
		if err != nil {
			return err
		}
		slot.StartTime = start
	}
	if req.EndTime != nil {
		end, err := parseTime("endTime", *req.EndTime)
		if err != nil {
			return err
		}
		slot.EndTime = end
	}
	if req.MaxAttendees != nil {
		slot.MaxAttendees = *req.MaxAttendees
	}
	return nil
}

// translateTxError оставляет бизнес-ошибки как есть, остальное считает внутренней ошибкой
func (s *Service) translateTxError(err error) error {
	for _, known := range []error{
		ErrTimeSlotNotFound,
		ErrAccessDenied,
		ErrTimeSlotConflict,
		ErrSlotBooked,
		ErrInvalidInput,
		ErrInvalidTimeRange,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}
