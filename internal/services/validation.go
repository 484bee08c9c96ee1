package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	enumMessages = map[string]string{}
)

func registerEnum[T ~string](v *validator.Validate, tag string, set constants.EnumSet[T]) {
	enumMessages[tag] = "must be one of: " + strings.Join(set.Strings(), ", ")
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return set.Contains(T(fl.Field().String()))
	})
}

// Validator returns the shared validator with the program's enum tags registered.
// Field names in errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", validators.NotBlank)

		registerEnum(v, "district", constants.Districts)
		registerEnum(v, "dare_model", constants.DareModels)
		registerEnum(v, "enterprise_type", constants.EnterpriseTypes)
		registerEnum(v, "enterprise_size", constants.EnterpriseSizes)
		registerEnum(v, "sector", constants.Sectors)
		registerEnum(v, "registration_status", constants.RegistrationStatuses)
		registerEnum(v, "tracking_period", constants.TrackingPeriods)
		registerEnum(v, "feasibility_status", constants.FeasibilityStatuses)
		registerEnum(v, "user_role", constants.UserRoles)
		registerEnum(v, "resource_status", constants.ResourceStatuses)
		registerEnum(v, "cost_type", constants.CostTypes)
		registerEnum(v, "relationship_role", constants.RelationshipRoles)
		registerEnum(v, "message_sender", constants.MessageSenders)
		registerEnum(v, "gender", constants.Genders)
		registerEnum(v, "owner_policy", constants.OwnerPolicies)

		validate = v
	})
	return validate
}

// validateRequest runs struct validation and reports every failing field.
func validateRequest(req any) error {
	err := Validator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Invalid("request", err.Error())
	}

	verr := &apperr.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), describe(fe))
	}
	return verr.OrNil()
}

// requireDates reports every named date that was sent as an empty string.
// Such dates decode to the zero time and pass "required", so they are checked
// here and merged with err from validateRequest.
func requireDates(err error, dates map[string]*requests.Date) error {
	var verr *apperr.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	if verr == nil {
		verr = &apperr.ValidationError{}
	}
	for field, d := range dates {
		if d != nil && d.IsZero() {
			verr.Add(field, "is required")
		}
	}
	return verr.OrNil()
}

// fieldPath strips the request struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	if msg, ok := enumMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "email":
		return "must be a valid email address"
	case "http_url":
		return "must be an absolute http(s) URL"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
