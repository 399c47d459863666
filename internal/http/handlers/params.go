package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

const (
	queryTag        = "query"
	msgInvalidDate  = "Invalid date format. Use YYYY-MM-DD."
	msgRequiredFmt  = "%s parameter is required"
	msgIntegerFmt   = "%s must be an integer"
	msgInvalidValue = "invalid value for %s"
)

type playersQuery struct {
	TeamID     string `query:"teamId"`
	PlayerName string `query:"playerName"`
}

type playerQuery struct {
	PlayerID string `query:"PlayerId" validate:"required"`
}

type seasonStatsQuery struct {
	Season     string `query:"Season"`
	PerMode    string `query:"PerMode"`
	SeasonType string `query:"SeasonType"`
}

type boxScoreQuery struct {
	GameID string `query:"gameId" validate:"required"`
}

type standingsQuery struct {
	LeagueID   string `query:"LeagueId"`
	Season     string `query:"Season"`
	SeasonType string `query:"SeasonType"`
}

type scheduleQuery struct {
	Season    string `query:"Season"`
	LeagueID  string `query:"LeagueId"`
	TeamID    string `query:"TeamId"`
	StartDate string `query:"StartDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"EndDate" validate:"omitempty,datetime=2006-01-02"`
}

type gamesQuery struct {
	LeagueID  string `query:"LeagueId"`
	DayOffset string `query:"DayOffset"`
	GameDate  string `query:"GameDate" validate:"datetime=2006-01-02"`
}

type seasonsQuery struct {
	LeagueID string `query:"LeagueId"`
}

// newValidator reports field errors by their query-string name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get(queryTag), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// bindQuery copies non-empty query values onto dst, whose fields hold the
// defaults, then validates the result. Only the first value of a repeated key is used.
func (h *Handler) bindQuery(values url.Values, dst any) error {
	raw := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 && vals[0] != "" {
			raw[key] = vals[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: queryTag,
		Result:  dst,
	})
	if err != nil {
		return fmt.Errorf("build query decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return badRequest("invalid query parameters", err)
	}

	if err := h.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return badRequest("invalid query parameters", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return badRequest(fmt.Sprintf(msgRequiredFmt, fe.Field()), err)
	case "datetime":
		return badRequest(msgInvalidDate, err)
	default:
		return badRequest(fmt.Sprintf(msgInvalidValue, fe.Field()), err)
	}
}
