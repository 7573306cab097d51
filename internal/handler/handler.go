package handler

import (
	"helpdesk/internal/apperror"
	"helpdesk/internal/middleware"
	"helpdesk/internal/model"
	"helpdesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError maps a core error onto its HTTP status and envelope
func respondError(c *gin.Context, err error) {
	c.JSON(apperror.HTTPStatus(err), model.NewErrorResponse(err.Error(), ""))
}

// requesterFromContext assembles the requester identity placed on the
// context by the auth middleware. An unparsable user id degrades to
// the zero ObjectID; the visibility builder treats that as absent
// identity context.
func requesterFromContext(c *gin.Context) service.Requester {
	userID := primitive.NilObjectID
	if hex := c.GetString(middleware.CtxUserIDKey); hex != "" {
		if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
			userID = oid
		}
	}
	return service.Requester{
		Role:   c.GetString(middleware.CtxRoleKey),
		UserID: userID,
		Branch: c.GetString(middleware.CtxBranchKey),
	}
}
