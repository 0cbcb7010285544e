// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseID parses the :id path parameter. A malformed id cannot name any
// document, so it is reported with the entity's not-found error instead of
// leaking the id format.
func parseID(c echo.Context, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
