package domain

import (
	"errors"
	"fmt"
)

// ErrorKind - класс ошибки обращения к backend
type ErrorKind int

const (
	// KindTransport - сеть недоступна, таймаут транспорта, битый JSON, нарушение контракта
	KindTransport ErrorKind = iota + 1
	// KindHTTP - backend ответил статусом вне 2xx
	KindHTTP
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// RequestError - единый контракт ошибки API клиента
type RequestError struct {
	Kind       ErrorKind
	StatusCode int // только для KindHTTP
	URL        string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Kind == KindHTTP {
		if e.Err != nil {
			return fmt.Sprintf("HTTP error! status: %d: %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err == nil {
		return "transport error"
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewTransportError оборачивает сетевую ошибку или ошибку декодирования
func NewTransportError(url string, err error) *RequestError {
	return &RequestError{Kind: KindTransport, URL: url, Err: err}
}

// NewHTTPError - ответ с кодом вне 2xx. detail может быть nil.
func NewHTTPError(url string, statusCode int, detail error) *RequestError {
	return &RequestError{Kind: KindHTTP, StatusCode: statusCode, URL: url, Err: detail}
}

// KindOf достает класс ошибки из цепочки. 0, если это не RequestError.
func KindOf(err error) ErrorKind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return 0
}

func IsTransport(err error) bool { return KindOf(err) == KindTransport }

func IsHTTP(err error) bool { return KindOf(err) == KindHTTP }

// StatusCode возвращает HTTP-код из цепочки ошибок или 0
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == KindHTTP {
		return reqErr.StatusCode
	}
	return 0
}
