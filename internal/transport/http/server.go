package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"socialnet-client/internal/config"
	"socialnet-client/internal/gateway"
	"socialnet-client/internal/handler"
	"socialnet-client/internal/media"
	"socialnet-client/internal/store"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Restore Local State
	storage, err := store.NewStorage(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to open state dir: %w", err)
	}
	st := store.New(storage)

	// 3. Connect Gateway to the Backend
	gw := gateway.NewClient(cfg.BackendURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second, st)
	st.SetLogoutNotifier(gw.Logout)

	// 4. Media Uploader
	uploader, err := media.NewUploader(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to set up media uploader: %w", err)
	}

	// 5. Handlers
	forests := handler.NewForestCache()
	postHandler := handler.NewPostHandler(gw, st, forests)
	router := NewRouter(RouterConfig{
		Store:                st,
		AuthHandler:          handler.NewAuthHandler(gw, st),
		FeedHandler:          handler.NewFeedHandler(gw, st, uploader),
		PostHandler:          postHandler,
		CommentHandler:       handler.NewCommentHandler(gw, st, postHandler, forests),
		UserHandler:          handler.NewUserHandler(gw, st),
		ProfileHandler:       handler.NewProfileHandler(gw, st, uploader),
		FriendRequestHandler: handler.NewFriendRequestHandler(gw, st),
		NotificationHandler:  handler.NewNotificationHandler(gw, st),
	})

	// 6. Serve the Local UI
	log.Printf("[Server] Listening on :%s, backend %s", cfg.ListenPort, cfg.BackendURL)
	return stdhttp.ListenAndServe(":"+cfg.ListenPort, router)
}
