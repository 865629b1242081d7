package context

import (
	"errors"
	"net/http"

	"SnackShop/pkg/log"
	"SnackShop/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxFullName = "full_name"
	CtxRole     = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 响应已经写出就不再处理
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Success: false,
					Message: be.Msg,
				})
				return
			}
			// 未知错误只记日志，不把内部细节透给客户端
			log.L.Error("handler error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Success: false,
				Message: "internal server error",
			})
		}
	}
}

func GetUserID(c *gin.Context) (int, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id missing from context")
	}

	uid, ok := v.(int)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

func GetRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}
