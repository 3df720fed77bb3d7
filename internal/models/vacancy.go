package models

import "time"

// DateLayout is the wire format of vacancy dates
const DateLayout = "2006-01-02"

// VacancyDB represents a vacancy record in the database
type VacancyDB struct {
	ID          int64     `db:"id"`           // Primary key
	CreatedAt   time.Time `db:"created_at"`   // Set once on insert
	ModifiedAt  time.Time `db:"modified_at"`  // Restamped on every write
	Name        string    `db:"name"`         // Title
	Source      *string   `db:"source"`       // Canonical URL, unique when present
	SourceName  string    `db:"source_name"`  // Origin label, e.g. hh
	Description *string   `db:"description"`  // Free text
	IsPublished bool      `db:"is_published"` // Visible on the public API
}

// VacancyRow is a VacancyDB with the total number of rows matching the query
type VacancyRow struct {
	VacancyDB
	Count int64 `db:"count"`
}

// VacancyData holds the supplied fields of a vacancy write.
// Nil fields are left untouched on update and take column defaults on insert.
type VacancyData struct {
	Name        *string
	Source      *string
	SourceName  *string
	Description *string
	IsPublished *bool
}

// ParsedVacancy is a vacancy as produced by a source parser
type ParsedVacancy struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	SourceName string `json:"source_name"`
}

// Data converts a parsed vacancy into an upsert payload
func (p ParsedVacancy) Data() VacancyData {
	return VacancyData{
		Name:       &p.Name,
		Source:     &p.Source,
		SourceName: &p.SourceName,
	}
}

// VacancyFilter is an exact-match conjunction over vacancy fields
type VacancyFilter struct {
	ID          *int64
	SourceName  *string
	IsPublished *bool
	ModifiedAt  *time.Time
}

// VacancySearch holds full text search options
type VacancySearch struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	Query         *string
	SourceName    *string
	PublishedOnly bool
}

// Page is a limit/offset window
type Page struct {
	Limit  int
	Offset int
}

// VacancyResponse is the JSON view of a vacancy
// swagger:model VacancyResponse
type VacancyResponse struct {
	// example: 42
	ID int64 `json:"id"`

	// example: 2024-03-01
	CreatedAt string `json:"created_at"`

	// example: 2024-03-02
	ModifiedAt string `json:"modified_at"`

	// example: Go developer
	Name string `json:"name"`

	// example: https://hh.ru/vacancy/1
	Source *string `json:"source"`

	// example: hh
	SourceName string `json:"source_name"`

	Description *string `json:"description"`

	// example: true
	IsPublished bool `json:"is_published"`
}

// NewVacancyResponse renders a database record
func NewVacancyResponse(v VacancyDB) VacancyResponse {
	return VacancyResponse{
		ID:          v.ID,
		CreatedAt:   v.CreatedAt.Format(DateLayout),
		ModifiedAt:  v.ModifiedAt.Format(DateLayout),
		Name:        v.Name,
		Source:      v.Source,
		SourceName:  v.SourceName,
		Description: v.Description,
		IsPublished: v.IsPublished,
	}
}

// VacancyListResponse is a page of vacancies with navigation links
// swagger:model VacancyListResponse
type VacancyListResponse struct {
	// Total number of matching vacancies
	// example: 120
	Count int64 `json:"count"`

	// URL of the next page, null on the last page
	Next *string `json:"next"`

	// URL of the previous page, null on the first page
	Previous *string `json:"previous"`

	Results []VacancyResponse `json:"results"`
}

// PublicVacancyRequest is the body of an anonymous vacancy submission
// swagger:model PublicVacancyRequest
type PublicVacancyRequest struct {
	// required: true
	// example: Courier
	Name *string `json:"name" validate:"required,max=264"`

	// Either source or description is required
	// example: https://example.com/vacancy/1
	Source *string `json:"source" validate:"omitempty,http_url,max=264"`

	// Ignored, always replaced with the site name
	SourceName *string `json:"source_name" validate:"omitempty,max=16"`

	Description *string `json:"description" validate:"omitempty,max=1024"`
}

// PrivateVacancyRequest is the body of an admin create
// swagger:model PrivateVacancyRequest
type PrivateVacancyRequest struct {
	// required: true
	Name *string `json:"name" validate:"required,max=264"`

	Source *string `json:"source" validate:"omitempty,http_url,max=264"`

	SourceName *string `json:"source_name" validate:"omitempty,max=16"`

	Description *string `json:"description" validate:"omitempty,max=1024"`

	// required: true
	IsPublished *bool `json:"is_published" validate:"required"`
}

// PutVacancyRequest is the body of a full admin update
// swagger:model PutVacancyRequest
type PutVacancyRequest struct {
	// required: true
	Name *string `json:"name" validate:"required,max=264"`

	// required: true
	Source *string `json:"source" validate:"required,http_url,max=264"`

	// required: true
	SourceName *string `json:"source_name" validate:"required,max=16"`

	// required: true
	Description *string `json:"description" validate:"required,max=1024"`

	// required: true
	IsPublished *bool `json:"is_published" validate:"required"`
}

// PatchVacancyRequest is the body of a partial admin update
// swagger:model PatchVacancyRequest
type PatchVacancyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=264"`
	Source      *string `json:"source" validate:"omitempty,http_url,max=264"`
	SourceName  *string `json:"source_name" validate:"omitempty,max=16"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
	IsPublished *bool   `json:"is_published"`
}

// VacancyPage is one window of a vacancy query
type VacancyPage struct {
	Vacancies []VacancyDB
	Count     int64
}

// NewVacancyPage collects query rows into a page
func NewVacancyPage(rows []VacancyRow) VacancyPage {
	page := VacancyPage{Vacancies: make([]VacancyDB, 0, len(rows))}
	for _, row := range rows {
		page.Vacancies = append(page.Vacancies, row.VacancyDB)
		page.Count = row.Count
	}
	return page
}
