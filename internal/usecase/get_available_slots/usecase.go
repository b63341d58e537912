package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// UseCase use case построения календаря доступных слотов
type UseCase struct {
	client       BookingAPIClient
	location     *time.Location
	openMinutes  int
	closeMinutes int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - фиксированная гражданская таймзона планирования: "сегодня" и
// "сейчас" определяются в ней, а не в локальной зоне клиента
func NewUseCase(
	client BookingAPIClient,
	location *time.Location,
	openMinutes int,
	closeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		location:     location,
		openMinutes:  openMinutes,
		closeMinutes: closeMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, service=%d, date=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в гражданской таймзоне планирования
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем услугу (fail-closed: без длительности календарь не построить)
	service, err := uc.client.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%d has invalid duration=%d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidService
	}

	// 4. Получаем занятые метки (fail-open: при сбое - пустой набор)
	booked := uc.client.GetBookedTimesWithGracefulDegradation(ctx, req.ServiceID, req.Date)

	// 5. Генерируем все слоты-кандидаты рабочего дня
	labels, err := generateSlotLabels(uc.openMinutes, uc.closeMinutes, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot labels: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Помечаем прошедшие и занятые слоты
	isToday := isSameDay(req.Date, now)

	slots := markAvailability(labels, booked, isToday, types.NewTimeString(now))

	uc.logger.Info("GetAvailableSlots: built %d slots (%d booked labels) for service=%d, date=%s",
		len(slots), len(booked), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
