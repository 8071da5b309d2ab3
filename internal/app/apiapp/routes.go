package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sfmk07/Flairv3/internal/config"
	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	chatsvc "github.com/sfmk07/Flairv3/internal/services/chat"
	discoverysvc "github.com/sfmk07/Flairv3/internal/services/discovery"
	geosvc "github.com/sfmk07/Flairv3/internal/services/geo"
	likessvc "github.com/sfmk07/Flairv3/internal/services/likes"
	matchessvc "github.com/sfmk07/Flairv3/internal/services/matches"
	mediasvc "github.com/sfmk07/Flairv3/internal/services/media"
	profilessvc "github.com/sfmk07/Flairv3/internal/services/profiles"
	"github.com/sfmk07/Flairv3/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService      *authsvc.Service
	GeoService       *geosvc.Service
	ProfileService   *profilessvc.Service
	DiscoveryService *discoverysvc.Service
	LikeService      *likessvc.Service
	MatchService     *matchessvc.Service
	ChatService      *chatsvc.Service
	MediaService     *mediasvc.Service
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService, deps.GeoService, deps.MediaService)
	feedHandler := handlers.NewFeedHandler(deps.DiscoveryService, deps.MediaService)
	likeHandler := handlers.NewLikeHandler(deps.LikeService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService, deps.MediaService)
	chatHandler := handlers.NewChatHandler(deps.ChatService)
	mediaHandler := handlers.NewMediaHandler(deps.MediaService)
	authMW := AuthMiddleware(deps.AuthService, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign_up", authHandler.SignUp)
		r.Post("/sign_in", authHandler.SignIn)
		r.Post("/refresh", authHandler.Refresh)
		r.With(authMW).Post("/logout", authHandler.Logout)
		r.With(authMW).Post("/logout_all", authHandler.LogoutAll)
	})

	r.With(authMW).Get("/me", profileHandler.Me)
	r.With(authMW).Put("/profile", profileHandler.Update)
	r.With(authMW).Post("/profile/location", profileHandler.UpdateLocation)
	r.With(authMW).Post("/media/photo", mediaHandler.PhotoUpload)
	r.With(authMW).Get("/feed", feedHandler.Handle)
	r.With(authMW).Post("/likes", likeHandler.Handle)
	r.With(authMW).Get("/matches", matchesHandler.List)
	r.With(authMW).Post("/block", matchesHandler.Block)
	r.With(authMW).Post("/report", matchesHandler.Report)

	r.Route("/matches/{match_id}", func(r chi.Router) {
		r.Use(authMW)
		r.Get("/", matchesHandler.Get)
		r.Get("/messages", chatHandler.History)
		r.Post("/messages", chatHandler.Send)
		r.Get("/stream", chatHandler.Stream)
	})
}
