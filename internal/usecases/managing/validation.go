package managing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// numericColumn espelha uma coluna NUMERIC(precision, scale) do schema
type numericColumn struct {
	precision int32
	scale     int32
}

var (
	rateColumn   = numericColumn{precision: 5, scale: 2}
	moneyColumn  = numericColumn{precision: 10, scale: 2}
	metricColumn = numericColumn{precision: 15, scale: 2}
)

func (c numericColumn) fits(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(c.scale)) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, c.precision-c.scale))
}

func (c numericColumn) param() string {
	return fmt.Sprintf("%d,%d", c.precision, c.scale)
}

func checkDecimal(sl playground.StructLevel, d *decimal.Decimal, field, structField string, column numericColumn) {
	if d == nil || column.fits(*d) {
		return
	}
	sl.ReportError(d.String(), field, structField, "decimal", column.param())
}

// validateDecimals rejeita valores que o banco arredondaria ou não comportaria
func validateDecimals(sl playground.StructLevel) {
	switch r := sl.Current().Interface().(type) {
	case domain.CreateInfluencerRequest:
		checkDecimal(sl, &r.EngagementRate, "engagementRate", "EngagementRate", rateColumn)
		checkDecimal(sl, &r.RatePerPost, "ratePerPost", "RatePerPost", moneyColumn)
	case domain.UpdateInfluencerRequest:
		checkDecimal(sl, r.EngagementRate, "engagementRate", "EngagementRate", rateColumn)
		checkDecimal(sl, r.RatePerPost, "ratePerPost", "RatePerPost", moneyColumn)
	case domain.CreateCampaignRequest:
		checkDecimal(sl, &r.Budget, "budget", "Budget", moneyColumn)
	case domain.UpdateCampaignRequest:
		checkDecimal(sl, r.Budget, "budget", "Budget", moneyColumn)
	case domain.CreateCollaborationRequest:
		checkDecimal(sl, r.AgreedRate, "agreedRate", "AgreedRate", moneyColumn)
		checkDecimal(sl, r.ActualEngagement, "actualEngagement", "ActualEngagement", rateColumn)
	case domain.UpdateCollaborationRequest:
		checkDecimal(sl, r.AgreedRate, "agreedRate", "AgreedRate", moneyColumn)
		checkDecimal(sl, r.ActualEngagement, "actualEngagement", "ActualEngagement", rateColumn)
	case domain.CreateAnalyticsRequest:
		checkDecimal(sl, &r.Value, "value", "Value", metricColumn)
	}
}

type validator struct {
	v *playground.Validate
}

func newValidator() *validator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// decimais são validados pelo valor numérico (gte, lte)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// usa o nome do campo em JSON nas mensagens
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterStructValidation(validateDecimals,
		domain.CreateInfluencerRequest{}, domain.UpdateInfluencerRequest{},
		domain.CreateCampaignRequest{}, domain.UpdateCampaignRequest{},
		domain.CreateCollaborationRequest{}, domain.UpdateCollaborationRequest{},
		domain.CreateAnalyticsRequest{},
	)

	return &validator{v: v}
}

// Struct valida o request e converte as falhas em ErrValidation
func (v *validator) Struct(request interface{}) error {
	if request == nil || reflect.ValueOf(request).IsNil() {
		return newValidationError(apiErrors.ErrMissingRequiredData, "corpo da requisição ausente")
	}

	err := v.v.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return newValidationError(apiErrors.ErrInvalidRequest, err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}

	return newValidationError(apiErrors.ErrInvalidRequest, strings.Join(details, "; "))
}
