package v1

import (
	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services exposed over REST
type Services struct {
	Auth         users.AuthService
	Registration registration.RegistrationService
	Dealers      partners.DealerService
	Technicians  partners.TechnicianService
	Bookings     bookings.BookingService
	Complaints   bookings.ComplaintService
	Trust        trust.TrustService
	Sellers      commerce.SellerService
	Products     commerce.ProductService
	Orders       commerce.OrderService
	Marketing    marketing.ContentService
	Territories  territories.TerritoryService
	Documents    documents.DocumentService
	Audits       audits.AuditService
	Dashboard    dashboard.DashboardService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services) {
	v1 := r.Group(BasePath) // lookup in version file

	authHandler := NewAuthHandler(services.Auth)
	registrationHandler := NewRegistrationHandler(services.Registration)
	partnerHandler := NewPartnerHandler(services.Dealers, services.Technicians, services.Documents)
	bookingHandler := NewBookingHandler(services.Bookings, services.Complaints)
	trustHandler := NewTrustHandler(services.Trust)
	commerceHandler := NewCommerceHandler(services.Sellers, services.Products)
	orderHandler := NewOrderHandler(services.Orders)
	marketingHandler := NewMarketingHandler(services.Marketing)
	territoryHandler := NewTerritoryHandler(services.Territories)
	documentHandler := NewDocumentHandler(services.Documents)
	auditHandler := NewAuditHandler(services.Audits, services.Dashboard)

	// Public Routes
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/register/dealer", registrationHandler.RegisterDealer)
	v1.POST("/register/technician", registrationHandler.RegisterTechnician)
	v1.POST("/register/customer", registrationHandler.RegisterCustomer)
	v1.GET("/territories", territoryHandler.List)
	v1.GET("/territories/resolve", territoryHandler.Resolve)
	v1.GET("/catalog/products", commerceHandler.Catalog)
	v1.GET("/catalog/products/:id", commerceHandler.CatalogItem)
	v1.GET("/catalog/products/:id/image", commerceHandler.ProductImage)
	v1.GET("/marketing/contents/active", marketingHandler.Active)
	v1.GET("/marketing/contents/:id/image", marketingHandler.Image)

	// Authenticated Routes
	authed := v1.Group("", Authenticate(services.Auth))
	customer := RequireRoles(users.RoleCustomer)
	partner := RequireRoles(users.RoleDealer, users.RoleTechnician)

	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	authed.POST("/bookings", customer, bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.List)
	authed.GET("/bookings/:id", bookingHandler.GetByID)
	authed.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	authed.PATCH("/bookings/:id/assign", RequireRoles(append([]users.Role{users.RoleDealer}, adminRoles...)...), bookingHandler.AssignTechnician)
	authed.GET("/bookings/:id/history", bookingHandler.History)
	authed.GET("/bookings/:id/job-sheet", bookingHandler.JobSheet)
	authed.POST("/bookings/:id/complaints", customer, bookingHandler.RaiseComplaint)
	authed.GET("/complaints", bookingHandler.ListComplaints)

	authed.POST("/orders", customer, orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.GetByID)
	authed.GET("/orders/:id/invoice", orderHandler.Invoice)

	authed.POST("/kyc/documents", partner, documentHandler.Upload)
	authed.GET("/kyc/documents", partner, documentHandler.ListOwn)
	authed.GET("/kyc/documents/:id/file", documentHandler.DownloadByID)

	authed.GET("/dealer/technicians", RequireRoles(users.RoleDealer), partnerHandler.ListOwnTechnicians)

	// Admin Routes
	admin := authed.Group("/admin", RequireRoles(adminRoles...))

	admin.GET("/dealers", partnerHandler.ListDealers)
	admin.GET("/dealers/:id", partnerHandler.GetDealerByID)
	admin.PATCH("/dealers/:id/status", partnerHandler.UpdateDealerStatus)
	admin.PATCH("/dealers/:id/kyc", partnerHandler.UpdateDealerKYC)
	admin.DELETE("/dealers/:id", partnerHandler.DeleteDealerByID)
	admin.GET("/dealers/:id/documents", partnerHandler.ListDealerDocuments)

	admin.GET("/technicians", partnerHandler.ListTechnicians)
	admin.GET("/technicians/:id", partnerHandler.GetTechnicianByID)
	admin.PATCH("/technicians/:id/status", partnerHandler.UpdateTechnicianStatus)
	admin.PATCH("/technicians/:id/kyc", partnerHandler.UpdateTechnicianKYC)
	admin.DELETE("/technicians/:id", partnerHandler.DeleteTechnicianByID)
	admin.GET("/technicians/:id/documents", partnerHandler.ListTechnicianDocuments)

	admin.POST("/trust-scores/adjust", trustHandler.Adjust)
	admin.POST("/trust-scores/recalculate", trustHandler.Recalculate)
	admin.GET("/trust-scores/history", trustHandler.History)

	admin.PATCH("/complaints/:id", bookingHandler.UpdateComplaint)

	admin.GET("/products", commerceHandler.ListProducts)
	admin.POST("/products", commerceHandler.CreateProduct)
	admin.GET("/products/:id", commerceHandler.GetProductByID)
	admin.PUT("/products/:id", commerceHandler.UpdateProduct)
	admin.DELETE("/products/:id", commerceHandler.DeleteProductByID)
	admin.PATCH("/products/:id/stock", commerceHandler.SetProductStock)
	admin.PATCH("/products/:id/active", commerceHandler.SetProductActive)
	admin.POST("/products/:id/image", commerceHandler.UploadProductImage)

	admin.GET("/sellers", commerceHandler.ListSellers)
	admin.POST("/sellers", commerceHandler.CreateSeller)
	admin.GET("/sellers/:id", commerceHandler.GetSellerByID)
	admin.DELETE("/sellers/:id", commerceHandler.DeleteSellerByID)
	admin.PATCH("/sellers/:id/status", commerceHandler.UpdateSellerStatus)

	admin.GET("/orders", orderHandler.List)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	admin.GET("/marketing/contents", marketingHandler.List)
	admin.POST("/marketing/contents", marketingHandler.Create)
	admin.PUT("/marketing/contents/:id", marketingHandler.Update)
	admin.DELETE("/marketing/contents/:id", marketingHandler.DeleteByID)
	admin.PATCH("/marketing/contents/:id/publish", marketingHandler.SetPublished)
	admin.POST("/marketing/contents/:id/image", marketingHandler.UploadImage)

	admin.POST("/territories", territoryHandler.Create)
	admin.PUT("/territories/:id", territoryHandler.Update)
	admin.DELETE("/territories/:id", territoryHandler.DeleteByID)

	admin.POST("/audits", auditHandler.Run)
	admin.GET("/audits", auditHandler.List)
	admin.GET("/audits/:id", auditHandler.GetByID)
	admin.GET("/audits/:id/report", auditHandler.Report)

	admin.GET("/dashboard/stats", auditHandler.Stats)

	admin.POST("/users", RequireRoles(users.RoleSuperAdmin), authHandler.CreateAdmin)
}
