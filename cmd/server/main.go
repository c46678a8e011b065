package main

import (
	"net/http"

	"authportal/config"
	"authportal/db"
	"authportal/db/mongo"
	"authportal/db/postgres"
	"authportal/handlers"
	"authportal/logger"
	"authportal/middleware"
	"authportal/repository"
	"authportal/routes"
	"authportal/token"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()
	logger.Init()

	var store db.DB
	var userRepo repository.UserRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		store = mg
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	signer := token.NewSigner(cfg.JWTSecret)

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo, Signer: signer}
	dashboardHandler := &handlers.DashboardHandler{Repo: userRepo}
	auth := &middleware.Auth{Signer: signer}

	mux := routes.SetupRoutes(userHandler, dashboardHandler, auth, "public")

	logger.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, middleware.Logging(mux)); err != nil {
		panic(err)
	}
}
