package handlers

import (
	"bytes"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/query"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util/errorutil"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindCreate decodes a required JSON body and checks that every required key is present.
func bindCreate(c *fiber.Ctx, out any) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return apperrors.NewBadRequest("Bad request")
	}
	if err := decode(c, out); err != nil {
		return err
	}
	return requireFields(out)
}

// bindUpdate decodes an optional JSON body. No bytes behave like {}.
func bindUpdate(c *fiber.Ctx, out any) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	return decode(c, out)
}

func decode(c *fiber.Ctx, out any) error {
	if !c.Is("json") {
		return apperrors.NewUnsupportedMediaType()
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewBadRequest("Bad request")
	}
	return nil
}

func requireFields(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewBadRequest("Bad request")
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return apperrors.NewBadRequest("missing required fields: " + strings.Join(missing, ", "))
}

func limitParam(c *fiber.Ctx) query.Limit {
	return query.ParseLimit(c.Query("limit"))
}
