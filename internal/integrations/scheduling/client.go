package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// maxErrorBodyBytes сколько байт тела ошибки читается для сообщения
const maxErrorBodyBytes = 4 << 10

// Client клиент для работы с сервисом расписания
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента сервиса расписания
// metrics может быть nil
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetSettings получает рабочие дни салона
func (c *Client) GetSettings(ctx context.Context) ([]domain.WorkingDay, error) {
	var settings Settings
	if err := c.do(ctx, "get_settings", http.MethodGet, "/time-management/settings", nil, &settings); err != nil {
		return nil, err
	}

	days := make([]domain.WorkingDay, 0, len(settings.WorkingDays))
	for _, d := range settings.WorkingDays {
		days = append(days, d.ToDomain())
	}
	return days, nil
}

// UpdateSettings заменяет список рабочих дней целиком
func (c *Client) UpdateSettings(ctx context.Context, days []domain.WorkingDay) ([]domain.WorkingDay, error) {
	body := Settings{WorkingDays: make([]WorkingDay, 0, len(days))}
	for _, d := range days {
		body.WorkingDays = append(body.WorkingDays, WorkingDayFromDomain(d))
	}

	var updated Settings
	if err := c.do(ctx, "update_settings", http.MethodPut, "/time-management/settings", body, &updated); err != nil {
		return nil, err
	}

	// Сервис может ответить пустым телом, тогда считаем сохраненным то, что отправили
	if updated.WorkingDays == nil {
		return days, nil
	}
	result := make([]domain.WorkingDay, 0, len(updated.WorkingDays))
	for _, d := range updated.WorkingDays {
		result = append(result, d.ToDomain())
	}
	return result, nil
}

// GetSlots получает все слоты на дату по всем услугам
// Слоты с нераспознанным временем пропускаются
func (c *Client) GetSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	path := "/time-management/slots/" + date.Format(domain.DateFormat)

	var raw []Slot
	if err := c.do(ctx, "get_slots", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(raw))
	for _, s := range raw {
		t, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			c.log.Warn("GetSlots: skipping slot with invalid time %q on %s: %v", s.Time, date.Format(domain.DateFormat), err)
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Time:        t,
			Available:   s.Available,
			ServiceType: s.ServiceType,
		})
	}
	return slots, nil
}

// CreateAppointment создает одну запись
// requestID уходит в X-Request-ID, пустой заменяется новым uuid
func (c *Client) CreateAppointment(ctx context.Context, requestID string, req *CreateAppointmentRequest) (string, error) {
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var created Appointment
	err := c.doWithHeaders(ctx, "create_appointment", http.MethodPost, "/appointments", req, &created,
		map[string]string{"X-Request-ID": requestID})
	if err != nil {
		return "", err
	}

	id := created.AppointmentID()
	if id == "" {
		return "", fmt.Errorf("%w: appointment id is missing", ErrInvalidResponse)
	}
	return id, nil
}

// Login обменивает email и пароль на bearer токен
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: token is missing", ErrInvalidResponse)
	}
	return resp.Token, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, in, out interface{}) error {
	return c.doWithHeaders(ctx, operation, method, path, in, out, nil)
}

func (c *Client) doWithHeaders(
	ctx context.Context,
	operation, method, path string,
	in, out interface{},
	headers map[string]string,
) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(operation, outcome, time.Since(start).Seconds())
		}
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			outcome = "client_error"
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		outcome = "client_error"
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "transport_error"
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		outcome = "server_error"
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readErrorMessage(resp.Body))
	default:
		outcome = "client_error"
		return statusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		outcome = "invalid_response"
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func statusError(status int, message string) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, status, message)
	}
}

// readErrorMessage читает ограниченную часть тела ошибки
// и достает из JSON поле message или error, если оно есть
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil || len(data) == 0 {
		return "empty body"
	}

	var body ErrorResponse
	if json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}
