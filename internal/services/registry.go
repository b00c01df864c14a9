package services

// ServiceContainer aggregates every service so wiring happens in one
// place and handlers receive a single dependency.
type ServiceContainer struct {
	Auth         *AuthService
	Profile      *ProfileService
	Job          *JobService
	Application  *ApplicationService
	Notification *NotificationService
	Payment      *PaymentService
	Upload       *UploadService
}
