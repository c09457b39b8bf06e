package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the controller logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// idParam parses the ":id" path parameter as an unsigned primary key
func idParam(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
