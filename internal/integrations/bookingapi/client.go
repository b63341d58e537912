package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
)

const headerUserID = "X-User-ID"
const headerIdempotencyKey = "X-Idempotency-Key"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним booking API
// Всё состояние маркетплейса (услуги, бронирования, отзывы) живет за этим API;
// клиент - единственная точка доступа к нему
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента booking API
// transport может быть nil - тогда используется http.DefaultTransport
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	url := fmt.Sprintf("%s/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.doJSON(ctx, http.MethodGet, url, 0, nil, http.StatusOK, &service); err != nil {
		return nil, err
	}

	return service.ToDomain(), nil
}

// GetBookedTimes получает занятые метки времени для услуги на дату
func (c *Client) GetBookedTimes(ctx context.Context, serviceID int64, date time.Time) ([]string, error) {
	url := fmt.Sprintf("%s/bookings/service/%d/booked-times?date=%s",
		c.baseURL, serviceID, date.Format(domain.DateFormat))

	var resp BookedTimesResponse
	if err := c.doJSON(ctx, http.MethodGet, url, 0, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	return resp.BookedTimes, nil
}

// GetBookedTimesWithGracefulDegradation получает занятые метки с graceful degradation
// При недоступности booking API возвращает пустой набор: календарь показывает
// больше доступности вместо полной блокировки, а финальную проверку всё равно
// делает API при создании бронирования (fail-open только для чтения)
func (c *Client) GetBookedTimesWithGracefulDegradation(ctx context.Context, serviceID int64, date time.Time) domain.BookedTimeSet {
	labels, err := c.GetBookedTimes(ctx, serviceID, date)
	if err != nil {
		c.log.Error("BookingAPI unavailable, degrading booked times to empty set: service_id=%d, date=%s, error=%v",
			serviceID, date.Format(domain.DateFormat), err)
		return domain.BookedTimeSet{}
	}

	return domain.NewBookedTimeSet(labels)
}

// CreateBooking создает бронирование от имени пользователя
// idempotencyKey защищает от дублей при повторной отправке того же запроса
func (c *Client) CreateBooking(ctx context.Context, userID int64, idempotencyKey string, req *CreateBookingRequest) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/bookings", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerUserID, fmt.Sprintf("%d", userID))
	httpReq.Header.Set(headerIdempotencyKey, idempotencyKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, ErrSlotConflict
	case http.StatusNotFound:
		return nil, ErrServiceNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, readErrorMessage(resp.Body))
	default:
		return nil, unexpectedStatus(resp)
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

// CancelBooking отменяет бронирование с указанием причины
func (c *Client) CancelBooking(ctx context.Context, userID int64, bookingID int64, reason string) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/bookings/%d/cancel", c.baseURL, bookingID)

	body, err := json.Marshal(&CancelBookingRequest{CancelReason: reason})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerUserID, fmt.Sprintf("%d", userID))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusForbidden:
		return nil, ErrAccessDenied
	case http.StatusConflict, http.StatusBadRequest:
		return nil, ErrCannotCancel
	default:
		return nil, unexpectedStatus(resp)
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, userID int64, bookingID int64) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/bookings/%d", c.baseURL, bookingID)

	var booking Booking
	if err := c.doJSON(ctx, http.MethodGet, url, userID, nil, http.StatusOK, &booking); err != nil {
		return nil, err
	}

	return booking.ToDomain(), nil
}

// ListUserBookings получает список бронирований пользователя
func (c *Client) ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	url := fmt.Sprintf("%s/bookings", c.baseURL)

	var resp BookingListResponse
	if err := c.doJSON(ctx, http.MethodGet, url, userID, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(resp.Bookings))
	for i := range resp.Bookings {
		bookings[i] = resp.Bookings[i].ToDomain()
	}

	return bookings, nil
}

// CreateFeedback создает отзыв о завершенном бронировании
func (c *Client) CreateFeedback(ctx context.Context, userID int64, req *CreateFeedbackRequest) (*domain.Feedback, error) {
	url := fmt.Sprintf("%s/feedbacks", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerUserID, fmt.Sprintf("%d", userID))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusConflict:
		return nil, ErrFeedbackExists
	case http.StatusForbidden:
		return nil, ErrAccessDenied
	default:
		return nil, unexpectedStatus(resp)
	}

	var feedback Feedback
	if err := json.NewDecoder(resp.Body).Decode(&feedback); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return feedback.ToDomain(), nil
}

// ListFeedbacks получает список отзывов пользователя
func (c *Client) ListFeedbacks(ctx context.Context, userID int64) ([]*domain.Feedback, error) {
	url := fmt.Sprintf("%s/feedbacks", c.baseURL)

	var resp FeedbackListResponse
	if err := c.doJSON(ctx, http.MethodGet, url, userID, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	feedbacks := make([]*domain.Feedback, len(resp.Feedbacks))
	for i := range resp.Feedbacks {
		feedbacks[i] = resp.Feedbacks[i].ToDomain()
	}

	return feedbacks, nil
}

// ListFeedbacksWithGracefulDegradation получает отзывы с graceful degradation
// Список нужен только для локальной проверки "отзыв уже существует";
// при недоступности API возвращаем пустой список - финальное слово за сервером
func (c *Client) ListFeedbacksWithGracefulDegradation(ctx context.Context, userID int64) []*domain.Feedback {
	feedbacks, err := c.ListFeedbacks(ctx, userID)
	if err != nil {
		c.log.Error("BookingAPI unavailable, degrading feedback list to empty: user_id=%d, error=%v", userID, err)
		return []*domain.Feedback{}
	}
	return feedbacks
}

// Health проверяет доступность booking API
// Используется heartbeat-поллером для раннего обнаружения деградации
func (c *Client) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health check returned status %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}

// doJSON выполняет запрос и декодирует JSON ответ при ожидаемом статусе
// userID = 0 означает запрос без пользовательского контекста
func (c *Client) doJSON(ctx context.Context, method, url string, userID int64, body io.Reader, wantStatus int, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(headerUserID, fmt.Sprintf("%d", userID))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case wantStatus:
		// Продолжаем обработку
	case http.StatusNotFound:
		return c.notFoundError(url)
	case http.StatusForbidden:
		return ErrAccessDenied
	default:
		return unexpectedStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// notFoundError выбирает sentinel по типу запрошенного ресурса
func (c *Client) notFoundError(url string) error {
	if bytes.Contains([]byte(url), []byte("/services/")) {
		return ErrServiceNotFound
	}
	return ErrBookingNotFound
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

func readErrorMessage(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil || errResp.Message == "" {
		return "request rejected"
	}
	return errResp.Message
}
