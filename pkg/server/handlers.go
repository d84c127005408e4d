package server

import (
	"Trophy/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Image    *handler.Image
	Gallery  *handler.Gallery
	Comments *handler.CommentsHandler
	Catalog  *handler.Catalog
	Health   *handler.Health
}
