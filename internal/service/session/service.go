package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingGateway/internal/service/session/models"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// Service хранилище booking-сессий и оркестратор формы бронирования
// Сессия живет в памяти: внешнее состояние маркетплейса остается за booking API,
// здесь - только заполняемая форма (количество, слот, примененная скидка)
type Service struct {
	client       BookingAPIClient
	discounts    DiscountAPIClient
	timeProvider TimeProvider
	logger       Logger
	gauge        Gauge // может быть nil, если метрики выключены

	mu       sync.Mutex
	sessions map[string]*state
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	client BookingAPIClient,
	discounts DiscountAPIClient,
	gauge Gauge,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		discounts:    discounts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		gauge:        gauge,
		sessions:     make(map[string]*state),
	}
}

// Start открывает новую booking-сессию для услуги
// Снимает услугу с booking API один раз: цена и длительность фиксируются
// на все время жизни сессии
func (s *Service) Start(ctx context.Context, userID int64, serviceID int64) (*models.SessionView, error) {
	s.logger.Info("StartSession: user=%d, service=%d", userID, serviceID)

	service, err := s.client.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrServiceNotFound) {
			s.logger.Warn("StartSession: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("StartSession: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	sess := &state{
		id:           uuid.NewString(),
		userID:       userID,
		service:      *service,
		quantity:     domain.MinQuantity,
		phase:        phaseIdle,
		lastActivity: s.timeProvider.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	view := s.view(sess)
	s.mu.Unlock()

	if s.gauge != nil {
		s.gauge.Inc()
	}

	s.logger.Info("StartSession: session %s opened for user=%d, service=%d", sess.id, userID, serviceID)
	return view, nil
}

// Get возвращает текущее состояние сессии (quote для формы)
func (s *Service) Get(sessionID string, userID int64) (*models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	return s.view(sess), nil
}

// SetQuantity изменяет количество в сессии
// Любое изменение количества сбрасывает примененную скидку: базовая сумма
// изменилась, и сервер обязан перевалидировать купон против новой суммы
func (s *Service) SetQuantity(sessionID string, userID int64, quantity int) (*models.SessionView, error) {
	if quantity < domain.MinQuantity || quantity > domain.MaxQuantity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if quantity != sess.quantity {
		sess.quantity = quantity
		if sess.discount != nil {
			s.logger.Info("SetQuantity: session %s quantity changed to %d, discount %s invalidated",
				sessionID, quantity, sess.discount.Code)
		}
		sess.clearDiscount()
	}

	return s.view(sess), nil
}

// SelectSlot выбирает дату и время начала в сессии
func (s *Service) SelectSlot(sessionID string, userID int64, date time.Time, slot types.TimeString) (*models.SessionView, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidSlot)
	}
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sess.date = date
	sess.slot = slot

	return s.view(sess), nil
}

// ApplyCoupon валидирует купон-код против текущей базовой суммы сессии
// Пустой код отклоняется локально без сетевого вызова. Пока валидация
// в полете, повторная отправка запрещена. Успех заменяет сохраненную
// скидку (никогда не складывает); отказ сервера оставляет прежнюю нетронутой
func (s *Service) ApplyCoupon(ctx context.Context, sessionID string, userID int64, code string) (*models.SessionView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCouponCode
	}

	s.mu.Lock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if sess.phase == phaseCouponPending {
		s.mu.Unlock()
		return nil, ErrCouponRequestInFlight
	}

	sess.phase = phaseCouponPending
	epoch := sess.couponEpoch
	serviceID := sess.service.ID
	baseTotal := sess.baseTotal()

	// Сетевой вызов выполняется без удержания мьютекса
	s.mu.Unlock()

	discount, validateErr := s.discounts.Validate(ctx, code, serviceID, baseTotal)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Сессия могла истечь или закрыться, пока шла валидация
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.phase = phaseIdle
	sess.lastActivity = s.timeProvider.Now()

	if validateErr != nil {
		// Отказ сервера или сбой транспорта: прежняя скидка не трогается
		return nil, validateErr
	}

	// Количество изменилось во время валидации - результат устарел,
	// сумма уже другая и купон нужно валидировать заново
	if sess.couponEpoch != epoch {
		s.logger.Warn("ApplyCoupon: session %s changed during validation, discarding stale discount %s",
			sessionID, discount.Code)
		return s.view(sess), nil
	}

	sess.discount = discount
	s.logger.Info("ApplyCoupon: session %s applied discount %s (amount=%d)",
		sessionID, discount.Code, discount.DiscountAmount)

	return s.view(sess), nil
}

// RemoveCoupon снимает примененную скидку безусловно
func (s *Service) RemoveCoupon(sessionID string, userID int64) (*models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sess.clearDiscount()

	return s.view(sess), nil
}

// Snapshot возвращает данные сессии для сборки запроса на создание бронирования
func (s *Service) Snapshot(sessionID string, userID int64) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		SessionID:       sess.id,
		UserID:          sess.userID,
		ServiceID:       sess.service.ID,
		ProviderID:      sess.service.ProviderID,
		UnitPrice:       sess.service.UnitPrice,
		DurationMinutes: sess.service.DurationMinutes,
		Quantity:        sess.quantity,
		Date:            sess.date,
		Slot:            sess.slot,
		Discount:        sess.discount,
	}, nil
}

// Close закрывает сессию (после успешного создания бронирования)
func (s *Service) Close(sessionID string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.locked(sessionID, userID)
	if err != nil {
		return err
	}

	delete(s.sessions, sess.id)
	if s.gauge != nil {
		s.gauge.Dec()
	}

	s.logger.Info("CloseSession: session %s closed", sessionID)
	return nil
}

// CleanupExpired удаляет сессии без активности дольше ttl
// Вызывается фоновым поллером; возвращает количество удаленных сессий
func (s *Service) CleanupExpired(ttl time.Duration) int {
	deadline := s.timeProvider.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastActivity.Before(deadline) {
			delete(s.sessions, id)
			removed++
			if s.gauge != nil {
				s.gauge.Dec()
			}
		}
	}

	if removed > 0 {
		s.logger.Info("CleanupExpired: removed %d idle sessions", removed)
	}

	return removed
}

// locked находит сессию и проверяет владельца; вызывается под мьютексом
func (s *Service) locked(sessionID string, userID int64) (*state, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.userID != userID {
		return nil, ErrAccessDenied
	}
	sess.lastActivity = s.timeProvider.Now()
	return sess, nil
}

// view собирает снимок сессии; вызывается под мьютексом
func (s *Service) view(sess *state) *models.SessionView {
	view := &models.SessionView{
		ID:              sess.id,
		ServiceID:       sess.service.ID,
		ServiceName:     sess.service.Name,
		UnitPrice:       sess.service.UnitPrice,
		DurationMinutes: sess.service.DurationMinutes,
		Quantity:        sess.quantity,
		Slot:            sess.slot,
		BaseTotal:       sess.baseTotal(),
		TotalPrice:      sess.total(),
	}

	if !sess.date.IsZero() {
		date := sess.date
		view.Date = &date
	}
	if sess.discount != nil {
		discount := *sess.discount
		view.Discount = &discount
	}

	return view
}
