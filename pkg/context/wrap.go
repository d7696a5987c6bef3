package context

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/response"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// response already written, nothing to do
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id missing")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}
