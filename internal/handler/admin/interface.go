package admin

import (
	"github.com/gin-gonic/gin"
)

type IHandler interface {
	ActivateContract(c *gin.Context)
}
