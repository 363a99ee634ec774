package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/driver"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func toDriver(d *driver.Driver) servers.Driver {
	return servers.Driver{
		Id:        d.ID().Bytes(),
		Name:      d.Name(),
		Active:    d.IsActive(),
		Available: d.IsAvailable(),
		UpdatedAt: d.UpdatedAt(),
	}
}

// RegisterDriver handles POST /api/v1/admin/drivers. The driver id is the
// identity the auth gateway issues for them.
func (s *Server) RegisterDriver(c echo.Context) error {
	actor, err := actorWithRole(c, order.RoleAdmin)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.RegisterDriverJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	driverID, err := kernelID(req.DriverId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRegisterDriverCommand(actor, driverID, req.Name)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RegisterDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// SetDriverAvailability handles PUT /api/v1/driver/availability.
func (s *Server) SetDriverAvailability(c echo.Context) error {
	actor, err := actorWithRole(c, order.RoleDriver)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.SetDriverAvailabilityJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(actor, req.Available)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.SetDriverAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDriver(updated))
}
