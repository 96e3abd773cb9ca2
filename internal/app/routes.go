package app

import (
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/auth"
	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/donation"
	"github.com/peaceoutommy/DMA-API/internal/employee"
	"github.com/peaceoutommy/DMA-API/internal/funding"
	"github.com/peaceoutommy/DMA-API/internal/health"
	"github.com/peaceoutommy/DMA-API/internal/middleware"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/platform/router"
	"github.com/peaceoutommy/DMA-API/internal/platform/validation"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

const uploadsPath = "/uploads/"

// payload decodes and validates a JSON body of type T after running mws.
func payload[T any](maxBodyBytes int64, validator validation.Validator, mws ...router.Middleware) []router.Middleware {
	return append(mws,
		middleware.DecodePayload[T](maxBodyBytes),
		middleware.ValidateInput[T](validator))
}

func mountRoutes(p *Provider, cfg *config.Config, m *modules) {
	r := p.Router
	requireToken := auth.RequireToken(p.Signer, m.auth.Service())
	requireAdmin := auth.RequireRole(principal.RoleAdmin)
	maxBody := cfg.Server.MaxBodyBytes

	r.Group("/api", func(api router.Router) {
		api.Get("/active", health.Active)

		mountAuthRoutes(api, m.auth.Handler(), p.Validator, requireToken, cfg)
		mountUserRoutes(api, m.user.Handler(), requireToken)

		api.Group("/companies", func(gr router.Router) {
			mountCompanyRoutes(gr, m.company.Handler(), p.Validator, maxBody, requireAdmin)
			mountRoleRoutes(gr, m.role.Handler(), p.Validator, maxBody, requireAdmin)
			mountMembershipRoutes(gr, m.employee.Handler(), p.Validator, maxBody)
			mountFundingRoutes(gr, m.funding.Handler(), p.Validator, maxBody)
		}, requireToken)

		mountCampaignRoutes(api, m.campaign.Handler(), p.Validator, maxBody, requireToken)
		mountDonationRoutes(api, m.donation.Handler(), p.Validator, maxBody, requireToken)

		api.Group("/tickets", func(gr router.Router) {
			mountTicketRoutes(gr, m.ticket.Handler(), p.Validator, maxBody)
		}, requireToken, requireAdmin)
	})

	// preflight requests are answered by the CORS middleware
	r.Options("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if local, ok := p.Store.(*media.LocalStore); ok {
		r.Get(uploadsPath, http.StripPrefix(uploadsPath, http.FileServer(http.Dir(local.Dir()))).ServeHTTP)
	}
}

func mountAuthRoutes(r router.Router, h *auth.Handler, validator validation.Validator, requireToken router.Middleware, cfg *config.Config) {
	maxBody := cfg.Server.MaxBodyBytes
	limit := middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", h.Register, payload[auth.RegisterRequest](maxBody, validator, limit)...)
		gr.Post("/login", h.Login, payload[auth.LoginRequest](maxBody, validator, limit)...)
		gr.Get("/me", h.Me, requireToken)
	})
}

func mountUserRoutes(r router.Router, h *user.Handler, requireToken router.Middleware) {
	r.Group("/users", func(gr router.Router) {
		gr.Get("/{id}", h.Get)
		gr.Get("/email/{email}", h.GetByEmail)
		gr.Get("/search/{email}", h.Search)
		gr.Post("/me/picture", h.UploadPicture)
	}, requireToken)
}

func mountCompanyRoutes(r router.Router, h *company.Handler, validator validation.Validator, maxBody int64, requireAdmin router.Middleware) {
	r.Get("", h.List)
	r.Post("", h.Create, payload[company.CreateRequest](maxBody, validator)...)
	r.Get("/{id}", h.Get)

	r.Get("/types", h.ListTypes)
	r.Get("/types/{id}", h.GetType)
	r.Post("/types", h.CreateType, payload[company.TypeRequest](maxBody, validator, requireAdmin)...)
	r.Put("/types", h.UpdateType, payload[company.UpdateTypeRequest](maxBody, validator, requireAdmin)...)
	r.Delete("/types/{id}", h.DeleteType, requireAdmin)
}

func mountRoleRoutes(r router.Router, h *role.Handler, validator validation.Validator, maxBody int64, requireAdmin router.Middleware) {
	r.Group("/roles", func(gr router.Router) {
		gr.Get("/{companyId}", h.ListRoles, auth.RequirePermission(role.PermListRoles))
		gr.Post("", h.CreateRole,
			payload[role.CreateRoleRequest](maxBody, validator, auth.RequirePermission(role.PermCreateRole))...)
		gr.Put("", h.UpdateRole,
			payload[role.UpdateRoleRequest](maxBody, validator, auth.RequirePermission(role.PermModifyRole))...)
		gr.Delete("/{id}", h.DeleteRole, auth.RequirePermission(role.PermDeleteRole))

		gr.Get("/permissions", h.ListPermissions, requireAdmin)
		gr.Get("/permissions/types", h.ListPermissionTypes, requireAdmin)
		gr.Post("/permission", h.CreatePermission,
			payload[role.PermissionRequest](maxBody, validator, requireAdmin)...)
		gr.Put("/permission", h.UpdatePermission,
			payload[role.UpdatePermissionRequest](maxBody, validator, requireAdmin)...)
		gr.Delete("/permission/{id}", h.DeletePermission, requireAdmin)
	})
}

func mountMembershipRoutes(r router.Router, h *employee.Handler, validator validation.Validator, maxBody int64) {
	r.Group("/membership", func(gr router.Router) {
		gr.Get("/{companyId}/employees", h.List)
		gr.Post("", h.Add,
			payload[employee.AddRequest](maxBody, validator, auth.RequirePermission(role.PermAddEmployee))...)
		gr.Delete("", h.Remove,
			payload[employee.RemoveRequest](maxBody, validator, auth.RequirePermission(role.PermRemoveEmployee))...)
	})
}

func mountFundingRoutes(r router.Router, h *funding.Handler, validator validation.Validator, maxBody int64) {
	r.Post("/funding", h.Request,
		payload[funding.CreateRequest](maxBody, validator, auth.RequirePermission(role.PermRequestFunds))...)
}

func mountCampaignRoutes(r router.Router, h *campaign.Handler, validator validation.Validator, maxBody int64, requireToken router.Middleware) {
	modify := auth.RequirePermission(role.PermModifyCampaign)

	r.Group("/campaigns", func(gr router.Router) {
		gr.Get("", h.List)
		gr.Get("/{id}", h.Get)
		// multipart form, decoded by the handler
		gr.Post("", h.Create, requireToken, auth.RequirePermission(role.PermCreateCampaign))
		gr.Put("", h.Update, payload[campaign.UpdateRequest](maxBody, validator, requireToken, modify)...)
		gr.Post("/archive/{id}", h.Archive, requireToken, modify)
		gr.Delete("/{id}", h.Delete, requireToken, modify)
	})
}

func mountDonationRoutes(r router.Router, h *donation.Handler, validator validation.Validator, maxBody int64, requireToken router.Middleware) {
	r.Group("/donations", func(gr router.Router) {
		gr.Post("", h.Create, payload[donation.CreateRequest](maxBody, validator, requireToken)...)
		gr.Get("/user/{userId}", h.ListByUser, requireToken)
		// signed raw body, read by the handler
		gr.Post("/webhook", h.Webhook)
	})
}

func mountTicketRoutes(r router.Router, h *ticket.Handler, validator validation.Validator, maxBody int64) {
	r.Get("", h.List)
	r.Get("/open", h.ListOpen)
	r.Get("/{ticketId}", h.Get)
	r.Put("/close", h.Close, payload[ticket.CloseRequest](maxBody, validator)...)
}
