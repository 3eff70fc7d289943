package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/auth"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
)

var (
	tracker *ledger.Tracker
	tokens  *auth.Service
)

// RegisterRoutes attaches all v1 routes to the two groups that are
// passed. public carries no authentication middleware, admin does. Both
// groups point at the same path prefix.
func RegisterRoutes(public, admin *gin.RouterGroup, t *ledger.Tracker, s *auth.Service) {
	tracker = t
	tokens = s

	RegisterDashboardRoutes(public.Group("/dashboard"))
	RegisterAuthRoutes(public.Group("/auth"), admin.Group("/auth"))
	RegisterDonationRoutes(public.Group("/donations"), admin.Group("/donations"))
	RegisterExpenseRoutes(public.Group("/expenses"), admin.Group("/expenses"))
	RegisterDonorRoutes(admin.Group("/donors"))
	RegisterHadithRoutes(admin.Group("/hadith"))
	RegisterLookupRoutes(admin.Group("/lookups"))
	RegisterPaymentInfoRoutes(public.Group("/payment-info"), admin.Group("/payment-info"))
}
