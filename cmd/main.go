package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/propertyhub/listings-api/internal/app"
	"github.com/propertyhub/listings-api/internal/config"
	"github.com/propertyhub/listings-api/internal/controllers"
	"github.com/propertyhub/listings-api/internal/middleware"
	"github.com/propertyhub/listings-api/internal/repositories"
	"github.com/propertyhub/listings-api/internal/routes"
	"github.com/propertyhub/listings-api/internal/services"
	"github.com/propertyhub/listings-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("app init failed")
	}
	defer application.Close()

	// 3) Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	cityRepo := repositories.NewCityRepository(application.DB)
	typeRepo := repositories.NewPropertyTypeRepository(application.DB)
	furnRepo := repositories.NewFurnishingTypeRepository(application.DB)
	propRepo := repositories.NewPropertyRepository(application.DB)
	photoRepo := repositories.NewPhotoRepository(application.DB)

	// 4) Services
	jwtSvc := services.NewJWTService(cfg.JWTSecret)
	mailerSvc := services.NewMailerService(cfg.SendgridAPIKey, cfg.SendgridFromEmail, cfg.SendgridFromName)
	mediaSvc, err := services.NewMediaService(services.MediaConfig{
		Endpoint:      cfg.MediaEndpoint,
		AccessKey:     cfg.MediaAccessKey,
		SecretKey:     cfg.MediaSecretKey,
		Bucket:        cfg.MediaBucket,
		UseSSL:        cfg.MediaUseSSL,
		PublicBaseURL: cfg.MediaPublicBaseURL,
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("media host init failed")
	}

	accountSvc := services.NewAccountService(userRepo, jwtSvc, mailerSvc)
	citySvc := services.NewCityService(cityRepo)
	typeSvc := services.NewPropertyTypeService(typeRepo)
	furnSvc := services.NewFurnishingTypeService(furnRepo)
	propSvc := services.NewPropertyService(propRepo, photoRepo, cityRepo, typeRepo, furnRepo, userRepo, mediaSvc)

	// 5) Seed data
	if cfg.SeedData {
		if err := app.SeedData(context.Background(), userRepo, cityRepo, typeRepo, furnRepo, propRepo); err != nil {
			utils.Logger.WithError(err).Fatal("seeding failed")
		}
	}

	// 6) Controllers
	healthCtrl := controllers.NewHealthController(application)
	accountCtrl := controllers.NewAccountController(accountSvc)
	cityCtrl := controllers.NewCityController(citySvc)
	typeCtrl := controllers.NewPropertyTypeController(typeSvc)
	furnCtrl := controllers.NewFurnishingTypeController(furnSvc)
	propCtrl := controllers.NewPropertyController(propSvc)

	// 7) Router
	auth := middleware.Auth(jwtSvc)
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.AccountRegister, accountCtrl.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountLogin, accountCtrl.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountForgotPassword, accountCtrl.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountResetPassword, accountCtrl.ResetPassword).Methods(http.MethodPost)

	// reference entities: reads are public, writes require auth
	router.HandleFunc(routes.CitiesBase, cityCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.CityByID, cityCtrl.GetByID).Methods(http.MethodGet)
	router.Handle(routes.CitiesBase, auth(http.HandlerFunc(cityCtrl.Create))).Methods(http.MethodPost)
	router.Handle(routes.CityByID, auth(http.HandlerFunc(cityCtrl.Update))).Methods(http.MethodPut)
	router.Handle(routes.CityByID, auth(http.HandlerFunc(cityCtrl.Patch))).Methods(http.MethodPatch)
	router.Handle(routes.CityByID, auth(http.HandlerFunc(cityCtrl.Delete))).Methods(http.MethodDelete)

	router.HandleFunc(routes.PropertyTypesBase, typeCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyTypeByID, typeCtrl.GetByID).Methods(http.MethodGet)
	router.Handle(routes.PropertyTypesBase, auth(http.HandlerFunc(typeCtrl.Create))).Methods(http.MethodPost)
	router.Handle(routes.PropertyTypeByID, auth(http.HandlerFunc(typeCtrl.Update))).Methods(http.MethodPut)
	router.Handle(routes.PropertyTypeByID, auth(http.HandlerFunc(typeCtrl.Patch))).Methods(http.MethodPatch)
	router.Handle(routes.PropertyTypeByID, auth(http.HandlerFunc(typeCtrl.Delete))).Methods(http.MethodDelete)

	router.HandleFunc(routes.FurnishingTypesBase, furnCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.FurnishingTypeByID, furnCtrl.GetByID).Methods(http.MethodGet)
	router.Handle(routes.FurnishingTypesBase, auth(http.HandlerFunc(furnCtrl.Create))).Methods(http.MethodPost)
	router.Handle(routes.FurnishingTypeByID, auth(http.HandlerFunc(furnCtrl.Update))).Methods(http.MethodPut)
	router.Handle(routes.FurnishingTypeByID, auth(http.HandlerFunc(furnCtrl.Patch))).Methods(http.MethodPatch)
	router.Handle(routes.FurnishingTypeByID, auth(http.HandlerFunc(furnCtrl.Delete))).Methods(http.MethodDelete)

	router.Handle(routes.PropertiesList, auth(http.HandlerFunc(propCtrl.List))).Methods(http.MethodGet)
	router.Handle(routes.PropertyDetail, auth(http.HandlerFunc(propCtrl.Detail))).Methods(http.MethodGet)
	router.Handle(routes.PropertiesBase, auth(http.HandlerFunc(propCtrl.Create))).Methods(http.MethodPost)
	router.Handle(routes.PropertyByID, auth(http.HandlerFunc(propCtrl.Update))).Methods(http.MethodPut)
	router.Handle(routes.PropertyByID, auth(http.HandlerFunc(propCtrl.Delete))).Methods(http.MethodDelete)

	router.Handle(routes.PropertyPhotos, auth(http.HandlerFunc(propCtrl.AddPhoto))).Methods(http.MethodPost)
	router.Handle(routes.PhotoSetPrimary, auth(http.HandlerFunc(propCtrl.SetPrimaryPhoto))).Methods(http.MethodPut)
	router.Handle(routes.PhotoByPublicID, auth(http.HandlerFunc(propCtrl.DeletePhoto))).Methods(http.MethodDelete)

	// 8) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
