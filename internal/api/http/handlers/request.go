package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/pkg/util/validate"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// bindJSON decodes the body into req and validates it.
func bindJSON(c *fiber.Ctx, req any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	return validate.Struct(req)
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": "must be a positive integer"})
	}
	return id, nil
}
