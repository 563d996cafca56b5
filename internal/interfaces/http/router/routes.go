package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mosslight/storefront/internal/infrastructure/auth"
	"github.com/mosslight/storefront/internal/interfaces/http/handler"
	"github.com/mosslight/storefront/internal/interfaces/http/middleware"
)

// StorefrontAPI wires every handler onto the versioned API group. Routes
// fall into three tiers: public (some with optional auth), customer, and
// admin under /admin.
type StorefrontAPI struct {
	JWT *auth.JWTService

	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Review       *handler.ReviewHandler
	Blog         *handler.BlogHandler
	Showcase     *handler.ShowcaseHandler
	Discussion   *handler.DiscussionHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler
	Analytics    *handler.AnalyticsHandler
	Media        *handler.MediaHandler
	System       *handler.SystemHandler
}

var _ RouteRegistrar = (*StorefrontAPI)(nil)

// RegisterRoutes implements RouteRegistrar
func (a *StorefrontAPI) RegisterRoutes(rg *gin.RouterGroup) {
	requireAuth := middleware.RequireAuth(a.JWT)
	optionalAuth := middleware.OptionalAuth(a.JWT)
	requireAdmin := middleware.RequireAdmin()

	// Public storefront
	rg.POST("/auth/login", a.Auth.Login)

	rg.GET("/catalog/products", a.Product.List)
	rg.GET("/catalog/products/:id", a.Product.Get)
	rg.GET("/catalog/products/:id/reviews", a.Review.ListForProduct)

	rg.GET("/content/blog", a.Blog.ListPublished)
	rg.GET("/content/blog/:slug", optionalAuth, a.Blog.GetBySlug)
	rg.GET("/content/gallery", a.Showcase.ListGallery)
	rg.GET("/content/portfolio", a.Showcase.ListPortfolio)
	rg.GET("/content/portfolio/featured", a.Showcase.ListFeaturedPortfolio)
	rg.GET("/content/social", a.Showcase.ListSocialLinks)
	rg.GET("/content/discussions", a.Discussion.ListThreads)

	rg.POST("/contact", optionalAuth, a.Message.Send)
	rg.POST("/analytics/events", optionalAuth, a.Analytics.RecordEvent)
	rg.GET("/media/:id/url", a.Media.GetDownloadURL)

	// Signed-in customers
	authed := rg.Group("", requireAuth)
	{
		authed.GET("/auth/profile", a.Auth.GetProfile)
		authed.PUT("/auth/profile", a.Auth.UpdateProfile)
		authed.GET("/auth/role", a.Auth.GetRole)

		authed.GET("/cart", a.Cart.Get)
		authed.POST("/cart/items", a.Cart.AddItem)
		authed.POST("/cart/items/bulk", a.Cart.AddItems)
		authed.PUT("/cart/items/:id", a.Cart.UpdateItem)
		authed.DELETE("/cart/items/:id", a.Cart.RemoveItem)
		authed.DELETE("/cart", a.Cart.Clear)

		authed.POST("/checkout", a.Order.Checkout)
		authed.GET("/orders", a.Order.ListMine)
		authed.GET("/orders/:id", a.Order.GetMine)

		authed.POST("/catalog/products/:id/reviews", a.Review.Submit)
		authed.DELETE("/reviews/:id", a.Review.Delete)

		authed.POST("/content/discussions", a.Discussion.Post)
		authed.DELETE("/content/discussions/:id", a.Discussion.Delete)

		authed.GET("/notifications", a.Notification.ListUnread)
		authed.POST("/notifications/:id/read", a.Notification.MarkRead)

		authed.GET("/messages/mine", a.Message.ListMine)
	}

	// Studio administration
	admin := rg.Group("/admin", requireAuth, requireAdmin)
	{
		admin.POST("/catalog/products", a.Product.Create)
		admin.PUT("/catalog/products/:id", a.Product.Update)
		admin.DELETE("/catalog/products/:id", a.Product.Delete)
		admin.POST("/catalog/products/:id/variants", a.Product.AddVariant)
		admin.PUT("/catalog/products/:id/variants/:size/:color", a.Product.UpdateVariant)
		admin.DELETE("/catalog/products/:id/variants/:size/:color", a.Product.RemoveVariant)
		admin.PUT("/catalog/products/:id/image", a.Product.SetImage)

		admin.GET("/orders", a.Order.List)
		admin.PUT("/orders/:id/status", a.Order.UpdateStatus)

		admin.GET("/content/blog", a.Blog.ListAll)
		admin.POST("/content/blog", a.Blog.Create)
		admin.PUT("/content/blog/:id", a.Blog.Update)
		admin.PUT("/content/blog/:id/publish", a.Blog.SetPublished)
		admin.PUT("/content/blog/:id/image", a.Blog.SetImage)
		admin.DELETE("/content/blog/:id", a.Blog.Delete)

		admin.POST("/content/gallery", a.Showcase.CreateGalleryItem)
		admin.PUT("/content/gallery/:id", a.Showcase.UpdateGalleryItem)
		admin.DELETE("/content/gallery/:id", a.Showcase.DeleteGalleryItem)

		admin.POST("/content/portfolio", a.Showcase.CreatePortfolioPiece)
		admin.PUT("/content/portfolio/:id", a.Showcase.UpdatePortfolioPiece)
		admin.PUT("/content/portfolio/:id/image", a.Showcase.SetPortfolioImage)
		admin.DELETE("/content/portfolio/:id", a.Showcase.DeletePortfolioPiece)

		admin.POST("/content/social", a.Showcase.CreateSocialLink)
		admin.PUT("/content/social/:id", a.Showcase.UpdateSocialLink)
		admin.DELETE("/content/social/:id", a.Showcase.DeleteSocialLink)

		admin.GET("/messages", a.Message.List)
		admin.POST("/messages/:id/read", a.Message.MarkRead)

		admin.GET("/users", a.Auth.ListUsers)
		admin.PUT("/users/:id/role", a.Auth.AssignRole)

		admin.GET("/analytics/report", a.Analytics.GetReport)
		admin.GET("/analytics/products/:id/views", a.Analytics.GetProductViews)

		admin.POST("/media/uploads", a.Media.InitiateUpload)
		admin.POST("/media/uploads/:id/confirm", a.Media.ConfirmUpload)
		admin.DELETE("/media/:id", a.Media.Delete)

		admin.GET("/system/stats", a.System.Stats)
	}
}
