// Package api содержит HTTP-клиент для взаимодействия с сервером todo-api.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя методы для отправки JSON-запросов (POST/GET/PUT/DELETE).
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается *APIError: статус и поле message
//     из тела ответа (если тело не JSON: весь текст тела или res.Status).
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// DefaultTimeout: таймаут одного запроса.
const DefaultTimeout = 10 * time.Second

// Client реализует HTTP-клиент для общения с сервером todo-api.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// APIError: ошибочный ответ сервера.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsStatus сообщает, что err является ответом сервера с указанным статусом.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// readAPIError читает тело ошибочного ответа.
//
// Сервер всегда отвечает models.ErrorResponse, но прокси и чужие серверы
// могут вернуть что угодно, поэтому при неудачном разборе берётся текст тела.
func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: res.StatusCode, Message: body.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return &APIError{StatusCode: res.StatusCode, Message: msg}
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil, ничего не делает. Пустое тело (io.EOF) не ошибка.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do отправляет запрос и обрабатывает ответ.
//
// Обработка ответа:
//   - 204 No Content: успех без попытки декодирования тела;
//   - прочие 2xx: декодирует JSON в resp (если resp != nil);
//   - не 2xx: *APIError.
func (c *Client) do(method, path string, req any, resp any) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}

	r, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIError(res)
	}

	// 204/пустое тело: ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос, сериализуя req в JSON.
func (c *Client) PostJSON(path string, req any, resp any) error {
	return c.do(http.MethodPost, path, req, resp)
}

// GetJSON выполняет GET-запрос и (опционально) декодирует JSON-ответ.
func (c *Client) GetJSON(path string, resp any) error {
	return c.do(http.MethodGet, path, nil, resp)
}

// PutJSON выполняет PUT-запрос, сериализуя req в JSON.
func (c *Client) PutJSON(path string, req any, resp any) error {
	return c.do(http.MethodPut, path, req, resp)
}

// DeleteJSON выполняет DELETE-запрос и (опционально) декодирует JSON-ответ.
func (c *Client) DeleteJSON(path string, resp any) error {
	return c.do(http.MethodDelete, path, nil, resp)
}
