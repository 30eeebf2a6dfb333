package handlers

import (
	"wealthestate/internal/config"
	"wealthestate/internal/repos"
	"wealthestate/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ListingHandler  *ListingHandler
	UploadHandler   *UploadHandler
	RegisterHandler *RegisterHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, desc services.Describer) *Deps {
	propRepo := repos.NewPropertyRepo(db)
	adRepo := repos.NewAdRepo(db)
	userRepo := repos.NewUserRepo(db)

	listingSvc := services.NewListingService(propRepo, userRepo, desc)
	registerSvc := services.NewRegisterService(userRepo)

	return &Deps{
		ListingHandler:  &ListingHandler{Listings: listingSvc, Ads: adRepo},
		UploadHandler:   &UploadHandler{Listings: listingSvc},
		RegisterHandler: &RegisterHandler{Register: registerSvc},
		AdminHandler:    &AdminHandler{Listings: listingSvc, Ads: adRepo},
	}
}
