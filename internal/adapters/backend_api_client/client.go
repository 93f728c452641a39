package backend_api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/port"
)

const DefaultBaseURL = "http://localhost:8000"

const (
	companiesPath  = "/api/v1/companies"
	industriesPath = "/api/v1/industries"
	locationsPath  = "/api/v1/locations"
	healthPath     = "/api/v1/health"
)

// сколько байт тела ошибки попадает в сообщение
const maxErrorBodyBytes = 512

// ContractValidator проверяет тело ответа по контракту до декодирования
type ContractValidator interface {
	Validate(contract string, body []byte) error
}

// Config - все, что нужно клиенту. Глобального состояния нет.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Validator может быть nil, тогда контракты не проверяются
	Validator ContractValidator
	// Контракты по ресурсам, пустая строка - без проверки
	Contracts Contracts
}

type Contracts struct {
	Companies  string
	Industries string
	Locations  string
	Health     string
}

// Client - клиент для чтения данных из backend API.
// Один запрос на вызов: без ретраев и без собственных таймаутов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validator  ContractValidator
	contracts  Contracts
}

var _ port.BackendAPIPort = (*Client)(nil)

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		validator:  cfg.Validator,
		contracts:  cfg.Contracts,
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, reqURL string) (*http.Response, error) {
	// 1. Извлекаем trace_id из контекста
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// 2. Устанавливаем заголовок для трассировки
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// get выполняет GET и декодирует JSON в out.
// Любая ошибка - *domain.RequestError: KindHTTP для статуса вне 2xx,
// KindTransport для сети, битого JSON и нарушения контракта.
func (c *Client) get(ctx context.Context, path, contract string, out interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	reqURL := c.baseURL + path
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendApiClient",
		"url":       reqURL,
	})

	clientLogger.Debug("Sending request to backend", nil)

	resp, err := c.doRequest(ctx, http.MethodGet, reqURL)
	if err != nil {
		clientLogger.Error("Failed to perform request to backend", err, nil)
		return domain.NewTransportError(reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Читаем начало тела, чтобы включить его в ошибку
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		var detail error
		if body := strings.TrimSpace(string(bodyBytes)); body != "" {
			detail = errors.New(body)
		}
		reqErr := domain.NewHTTPError(reqURL, resp.StatusCode, detail)
		clientLogger.Error("Received error response from backend", reqErr, port.Fields{"status_code": resp.StatusCode})
		return reqErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read response body from backend", err, nil)
		return domain.NewTransportError(reqURL, fmt.Errorf("failed to read response body: %w", err))
	}

	if c.validator != nil && contract != "" {
		if err := c.validator.Validate(contract, body); err != nil {
			clientLogger.Error("Backend response violates contract", err, port.Fields{"contract": contract})
			return domain.NewTransportError(reqURL, err)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		clientLogger.Error("Failed to decode response from backend", err, nil)
		return domain.NewTransportError(reqURL, fmt.Errorf("failed to decode response: %w", err))
	}

	clientLogger.Debug("Successfully received and decoded response", port.Fields{"status_code": resp.StatusCode})
	return nil
}

// FetchCompanies - страница компаний с необязательными фильтрами
func (c *Client) FetchCompanies(ctx context.Context, query domain.CompanyQuery) (*domain.PaginatedResult[domain.Company], error) {
	path := companiesPath
	if encoded := encodeCompanyQuery(query); encoded != "" {
		path += "?" + encoded
	}

	var dto CompanyListResponse
	if err := c.get(ctx, path, c.contracts.Companies, &dto); err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return dto.toDomain(), nil
}

// FetchIndustries - полный справочник отраслей
func (c *Client) FetchIndustries(ctx context.Context) ([]domain.Industry, error) {
	var dtos []IndustryResponse
	if err := c.get(ctx, industriesPath, c.contracts.Industries, &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch industries: %w", err)
	}
	return industriesToDomain(dtos), nil
}

// FetchLocations - полный справочник локаций
func (c *Client) FetchLocations(ctx context.Context) ([]domain.Location, error) {
	var dtos []LocationResponse
	if err := c.get(ctx, locationsPath, c.contracts.Locations, &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	return locationsToDomain(dtos), nil
}

func (c *Client) FetchHealth(ctx context.Context) (*domain.HealthStatus, error) {
	var dto HealthResponse
	if err := c.get(ctx, healthPath, c.contracts.Health, &dto); err != nil {
		return nil, fmt.Errorf("failed to fetch health status: %w", err)
	}
	return &domain.HealthStatus{
		Status:      dto.Status,
		Version:     dto.Version,
		Environment: dto.Environment,
		Timestamp:   dto.Timestamp,
	}, nil
}

// encodeCompanyQuery - в запрос попадают только заданные параметры
func encodeCompanyQuery(query domain.CompanyQuery) string {
	values := url.Values{}
	setInt := func(key string, v *int) {
		if v != nil {
			values.Set(key, strconv.Itoa(*v))
		}
	}

	setInt("industry_id", query.IndustryID)
	setInt("location_id", query.LocationID)
	setInt("page", query.Page)
	setInt("size", query.Size)

	return values.Encode()
}
