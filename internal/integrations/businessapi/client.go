package businessapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RequestIDHeader заголовок для сквозной трассировки запросов
const RequestIDHeader = "X-Request-ID"

// Client клиент публичного API бизнесов и бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusiness получает конфигурацию бизнеса: услуги, расписание и заблокированные даты
func (c *Client) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	endpoint := fmt.Sprintf("%s/businesses/%s", c.baseURL, url.PathEscape(businessID))

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrBusinessNotFound, businessID)
	default:
		return nil, unexpectedStatus(resp)
	}

	// Парсим ответ
	var business Business
	if err := json.NewDecoder(resp.Body).Decode(&business); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched business %s: services=%d, availability=%d, blocked_dates=%d",
		businessID, len(business.Services), len(business.Availability), len(business.BlockedDates))

	return business.toDomain(), nil
}

// GetSlots получает слоты услуги на дату
func (c *Client) GetSlots(ctx context.Context, businessID, serviceID string, date time.Time) ([]domain.Slot, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("service_id", serviceID)
	endpoint := fmt.Sprintf("%s/businesses/%s/slots?%s", c.baseURL, url.PathEscape(businessID), query.Encode())

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrBusinessNotFound, businessID)
	default:
		return nil, unexpectedStatus(resp)
	}

	var slots []Slot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return slotsToDomain(slots), nil
}

// CreateBooking создает бронирование.
// Отказ бэкенда (слот занят, некорректные данные) возвращается как ErrBookingRejected с текстом причины.
func (c *Client) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error) {
	body, err := json.Marshal(CreateBookingRequest{
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		Date:          req.Date.Format(domain.DateFormat),
		StartTime:     req.StartTime,
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/bookings", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		detail := readDetail(resp.Body)
		c.log.Warn("Booking rejected for business %s on %s %s: %s",
			req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, detail)
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, detail)
	default:
		return nil, unexpectedStatus(resp)
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Booking %s created for business %s", booking.ID, req.BusinessID)
	return booking.toDomain(), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}

// readDetail достает текст ошибки из тела {"detail": "..."}
func readDetail(r io.Reader) string {
	body, _ := io.ReadAll(r)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	if len(body) == 0 {
		return "no details"
	}
	return strings.TrimSpace(string(body))
}
