package main

import (
	"log"

	"docsite/models"
	"docsite/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	logger.SetLogLevel("info")

	if err := models.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer models.CloseDB()

	if err := models.InitJWT(); err != nil {
		log.Fatal("Failed to initialize JWT:", err)
	}

	srv := web.NewServer()
	logger.Info("Starting DocSite")
	log.Fatal(web.Run(srv))
}
