package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	Exchange ExchangeSvcFacade
	User     UserSvcFacade
	Contact  ContactSvcFacade
}
