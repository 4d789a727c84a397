package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	ProfileHandler    *ProfileHandler
	BrandHandler      *BrandHandler
	BillingHandler    *BillingHandler
	ConnectionHandler *ConnectionHandler
}
