package main

import (
	"github.com/messageapps/message_service/config"
	"github.com/messageapps/message_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
