package parsers

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

// Source identifies a vacancy source
type Source string

const (
	SourceHH       Source = "hh"
	SourceSuperjob Source = "superjob"
	SourceFarpost  Source = "farpost"
	SourceVK       Source = "vk"
)

// DefaultUserAgent is sent when neither the source nor the registry overrides it
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36"

var (
	ErrUnknownSource = errors.New("unknown source")
	ErrMissingOption = errors.New("missing source option")
)

// Parser fetches today's vacancies from one source
type Parser interface {
	Name() string
	FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error)
}
