package response

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Unprocessable       = http.StatusUnprocessableEntity
	TooManyRequests     = http.StatusTooManyRequests
	InternalServerError = http.StatusInternalServerError
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与业务码一致
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// FailWithData 校验失败时附带字段错误
func FailWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		FailWithData(c, Unprocessable, "Invalid input", fields)
		return
	}

	if isDecodeError(err) {
		Fail(c, BadRequest, "Invalid JSON body")
		return
	}

	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			if code >= InternalServerError {
				log.ErrorContext(c.Request.Context(), "Error", "err", err)
			}
			Fail(c, code, target.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}

// isDecodeError 请求体无法解析；gin 默认使用标准库解码，缓存与消息使用 goccy
func isDecodeError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var stdTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	var timeError *time.ParseError
	return errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &stdTypeError) ||
		errors.As(err, &stdSyntaxError) ||
		errors.As(err, &timeError) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
