package main

import (
	"log"
	"strings"

	"server/config"
	"server/db"
	"server/handlers"
	"server/models"
	"server/storage"

	"github.com/gin-gonic/autotls"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	router := handlers.CreateRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
