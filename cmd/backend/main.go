package main

import (
	"log"

	"backend/internal/api"

	_ "backend/docs"
)

// @title Procurement RFP API
// @version 1.0
// @description REST backend for creating RFPs, sending them to vendors and analyzing the proposals that come back.
// @BasePath /
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
