package respond

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/logs"
)

// Success writes the standard success envelope. The status defaults to 200
// when none is given.
func Success(c *fiber.Ctx, data interface{}, status ...int) error {
	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}

	return c.Status(code).JSON(fiber.Map{
		"statusCode": code,
		"message":    "success",
		"data":       data,
	})
}

// Error writes the standard failure envelope. Application errors keep their
// status and message; anything else is logged and masked as a 500.
func Error(c *fiber.Ctx, err error) error {
	code := apperr.StatusOf(err)
	if code == fiber.StatusInternalServerError {
		logs.Logger.WithError(err).WithFields(map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{
		"statusCode": code,
		"message":    apperr.MessageOf(err),
	})
}
