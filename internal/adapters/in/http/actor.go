package http

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Identity headers set by the upstream auth gateway.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

func actorFrom(c echo.Context) (order.Actor, error) {
	rawID := c.Request().Header.Get(HeaderActorID)
	rawRole := c.Request().Header.Get(HeaderActorRole)
	if rawID == "" || rawRole == "" {
		return order.Actor{}, errMissingActor
	}

	id, idErr := kernel.UUIDFromString(rawID)
	role, roleErr := order.ParseRole(rawRole)
	if err := errors.Join(idErr, roleErr); err != nil {
		return order.Actor{}, errors.Join(errMissingActor, err)
	}
	return order.NewActor(id, role)
}

// actorWithRole reads the actor of an endpoint reserved to one role, such as
// the /restaurant or /driver routes.
func actorWithRole(c echo.Context, role order.Role) (order.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return order.Actor{}, err
	}
	if actor.Role() != role {
		return order.Actor{}, errs.NewForbiddenError(actor.String(), "call "+role.String()+" endpoints")
	}
	return actor, nil
}

func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
