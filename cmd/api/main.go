package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shecanfoundation/intern-backend/internal/config"
	"github.com/shecanfoundation/intern-backend/internal/db"
	"github.com/shecanfoundation/intern-backend/internal/model"
	"github.com/shecanfoundation/intern-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Printf("config load error: %v", cfgErr)
		cfg = &config.Config{Port: "8080"}
	}

	srv := server.New(nil, cfg)
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	go func() {
		if cfgErr != nil {
			return
		}
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(&model.User{}); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
