package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/validation"
)

type errorResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

var couponErrors = []error{
	models.ErrCouponInvalid,
	models.ErrCouponExpired,
	models.ErrCouponLimitReached,
	models.ErrCouponAlreadyUsed,
	models.ErrCouponFirstOrders,
	models.ErrCouponMinOrder,
}

// writeError maps a service error onto a status code.
func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, validationResponse{
			Message: "validation failed",
			Errors:  verr.Fields,
		})
		return
	}

	var terr *service.InvalidTransitionError
	switch {
	case errors.As(err, &terr):
		newErrorResponse(c, http.StatusConflict, terr.Error())
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrPaymentNotAllowed):
		newErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPaymentVerification):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case isCouponError(err):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

func isCouponError(err error) bool {
	for _, target := range couponErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// body reads the raw request payload; validators decode it themselves.
func body(c *gin.Context) ([]byte, bool) {
	b, err := c.GetRawData()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "cannot read request body")
		return nil, false
	}
	return b, true
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("http request")
	}
}
