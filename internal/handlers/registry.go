package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	MatchingHandler *MatchingHandler
	ProfileHandler  *ProfileHandler
	HealthHandler   *HealthHandler
}
