package main

import (
	"os"
	_ "time/tzdata"

	"jewelstore/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Jewelstore API
// @version 1.0
// @description Metal rates, priced catalogue, storefront menu, OTP login and sales analytics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
