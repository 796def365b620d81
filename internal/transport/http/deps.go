package http

import (
	"github.com/VSaini11/dwv-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/VSaini11/dwv-api/internal/infrastructure/jwt"
	s3infra "github.com/VSaini11/dwv-api/internal/infrastructure/s3"
	"github.com/VSaini11/dwv-api/internal/infrastructure/smtp"
	"github.com/VSaini11/dwv-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router. ImageStore and
// Publisher are optional and may be nil.
type Deps struct {
	UserRepo       *dynamo.UserRepo
	OtpRepo        *dynamo.OtpRepo
	ProductRepo    *dynamo.ProductRepo
	SubscriberRepo *dynamo.SubscriberRepo
	ImageStore     *s3infra.Store
	Publisher      sns.Publisher
	Mailer         smtp.Mailer
	JWTProvider    *jwtinfra.Provider
}
