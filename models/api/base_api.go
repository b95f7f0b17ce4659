package apimodels

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type ErrorResponse struct {
	Error string `json:"error"` //сообщение ошибки
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

type StatusResponse struct {
	Status string `json:"status"`
}

func NewStatusOk() StatusResponse {
	return StatusResponse{Status: "ok"}
}

// NotFoundError запись не найдена, отдается как 404
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) error {
	return NotFoundError{Message: message}
}

// BadRequestError некорректные параметры запроса, отдается как 400
type BadRequestError struct {
	Message string
}

func (e BadRequestError) Error() string {
	return e.Message
}

func NewBadRequest(message string) error {
	return BadRequestError{Message: message}
}

// ValidationError ошибки валидации полей, отдается как 422 в виде {поле: [сообщения]}
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e ValidationError) HasErrors() bool {
	return len(e.Fields) != 0
}

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], " ")))
	}
	return strings.Join(parts, "; ")
}

const DefaultPerPage = 10

type Pagination struct {
	Page    int // Страница (0,1,2..)
	PerPage int // Записей на странице
}

func (p Pagination) GetLimit() int {
	if p.PerPage <= 0 {
		return DefaultPerPage
	}
	return p.PerPage
}

// GetOffset смещение страницы, при переполнении - math.MaxInt
func (p Pagination) GetOffset() int {
	if p.Page <= 0 {
		return 0
	}
	limit := p.GetLimit()
	if p.Page > math.MaxInt/limit {
		return math.MaxInt
	}
	return p.Page * limit
}

// InRange false, если страница целиком за пределами выборки из total записей
func (p Pagination) InRange(total int64) bool {
	if total <= 0 || p.Page < 0 {
		return false
	}
	return int64(p.Page) <= (total-1)/int64(p.GetLimit())
}

// ParsePage разбор query параметра page, пустое значение - первая (нулевая) страница
func ParsePage(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil {
		return 0, NewBadRequest(fmt.Sprintf("invalid page %q: must be an integer", value))
	}
	if page < 0 {
		return 0, NewBadRequest(fmt.Sprintf("invalid page %q: must not be negative", value))
	}
	return page, nil
}

type PageResponse struct {
	Items   interface{} `json:"items"`
	Total   int64       `json:"total"`
	PerPage int         `json:"per_page"`
}

func NewPageResponse(items interface{}, total int64, perPage int) PageResponse {
	return PageResponse{
		Items:   items,
		Total:   total,
		PerPage: perPage,
	}
}
