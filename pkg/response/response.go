package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/pkg/errors"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details   map[string]interface{} `json:"details,omitempty"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	MessageAr string                 `json:"message_ar,omitempty"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case "RATE_LIMITED":
		return http.StatusTooManyRequests // 429
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "ACCOUNT_INACTIVE":
		return http.StatusUnauthorized // 401
	case "PAGE_FORBIDDEN":
		return http.StatusForbidden // 403
	case "WORKER_NOT_FOUND", "PRODUCT_NOT_FOUND", "ORDER_NOT_FOUND",
		"INVOICE_NOT_FOUND", "CUSTOMER_NOT_FOUND":
		return http.StatusNotFound // 404
	case "ATTENDANCE_ALREADY_RECORDED", "WORKER_EMAIL_TAKEN":
		return http.StatusConflict // 409
	case "QR_FORMAT_INVALID", "QR_CODE_INVALID", "QR_CODE_EXPIRED",
		"ATTENDANCE_METHOD_INVALID", "ORDER_STATUS_INVALID",
		"COLLECTION_INVALID", "UPLOAD_TOO_LARGE", "UPLOAD_TYPE_INVALID",
		"PASSWORD_TOO_SHORT", "INVALID_REQUEST":
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var detail ErrorDetail
	if def, ok := err.(errors.Definition); ok {
		detail = ErrorDetail{
			Code:      def.Code,
			Message:   def.Message,
			MessageAr: def.MessageAr,
		}
	} else {
		detail = ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		}
	}

	c.JSON(statusCode, ErrorResponse{Error: detail})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var detail ErrorDetail
	if def, ok := err.(errors.Definition); ok {
		detail = ErrorDetail{
			Code:      def.Code,
			Message:   def.Message,
			MessageAr: def.MessageAr,
			Details:   details,
		}
	} else {
		detail = ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
			Details: details,
		}
	}

	c.JSON(statusCode, ErrorResponse{Error: detail})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func Created(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
