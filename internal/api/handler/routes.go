package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/drafting"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/pricing"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/repricing"
	"github.com/vfg2006/commerce-backoffice-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Fora do prefixo /v1/products para não colidir com o wildcard :id no httprouter
			Path:        "/v1/catalog/import",
			Method:      http.MethodPost,
			Handler:     ImportProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pricing(service pricing.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:id/pricing",
			Method:      http.MethodGet,
			Handler:     GetProductPricing(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/pricing/simulate",
			Method:      http.MethodPost,
			Handler:     SimulatePrice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Repricing(engine repricing.Engine, productRepo repository.ProductRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/repricing/run",
			Method:      http.MethodPost,
			Handler:     RunRepricing(engine, productRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Drafts(service drafting.Drafter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/drafts",
			Method:      http.MethodGet,
			Handler:     ListDrafts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/drafts/:id",
			Method:      http.MethodGet,
			Handler:     GetDraft(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/drafts/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveDraft(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/drafts/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectDraft(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
