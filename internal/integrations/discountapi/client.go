package discountapi

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с discount API
// Скидка создается только по результату серверной валидации:
// клиентская сторона никогда не вычисляет ее сама
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента discount API
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

// Validate валидирует купон-код против текущей суммы заказа
// Успех - *domain.Discount; отказ сервера - *CouponInvalidError с причиной;
// транспортные сбои - ErrInternal (скидка не применяется)
func (c *Client) Validate(ctx context.Context, code string, serviceID int64, totalAmount int64) (*domain.Discount, error) {
	url := fmt.Sprintf("%s/discounts/validate", c.baseURL)

	body, err := json.Marshal(&ValidateRequest{
		Code:        code,
		ServiceID:   serviceID,
		TotalAmount: totalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusConflict:
		// Отказ по бизнес-правилам приходит с пользовательской причиной
		return nil, &CouponInvalidError{Reason: readErrorMessage(resp.Body)}
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result ValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Valid {
		reason := result.Message
		if reason == "" {
			reason = "coupon is not valid"
		}
		c.log.Info("Coupon rejected by discount API: code=%s, reason=%s", code, reason)
		return nil, &CouponInvalidError{Reason: reason}
	}

	c.log.Info("Coupon validated: code=%s, discount_id=%d, amount=%d", result.Code, result.DiscountID, result.DiscountAmount)

	return &domain.Discount{
		DiscountID:     result.DiscountID,
		Code:           result.Code,
		DiscountAmount: result.DiscountAmount,
		FinalPrice:     result.FinalPrice,
	}, nil
}

func readErrorMessage(r io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(r).Decode(&errResp); err != nil || errResp.Message == "" {
		return "coupon is not valid"
	}
	return errResp.Message
}
