package services

import (
	"cloud.google.com/go/storage"

	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/platform/config"
)

// ContainerDeps holds the external clients the service container wires in.
// Nil fields degrade gracefully: a nil storage client disables photo uploads,
// a nil event publisher is replaced with a no-op.
type ContainerDeps struct {
	StorageClient *storage.Client
	Events        portssvc.EventPublisher
}

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first, everything else scopes access through it.
	container.User = NewUserService(repos.UserRepo)
	userReader := portssvc.UserReaderSvc(container.User)

	events := deps.Events
	if events == nil {
		events = NewNoopEventPublisher()
	}
	container.Events = events

	container.Ledger = NewLedgerService(
		repos.PurchaseRepo,
		repos.VendorTransactionRepo,
		WithLedgerUserReader(userReader),
	)

	container.Purchase = NewPurchaseService(
		repos.PurchaseRepo,
		repos.VendorRepo,
		repos.BranchRepo,
		WithPurchaseUserReader(userReader),
		WithPurchaseEventPublisher(events),
	)

	container.Vendor = NewVendorService(
		repos.VendorRepo,
		repos.VendorTransactionRepo,
		repos.BranchRepo,
		WithVendorUserReader(userReader),
		WithVendorEventPublisher(events),
	)

	container.Branch = NewBranchService(
		repos.BranchRepo,
		WithBranchUserReader(userReader),
	)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Upload = NewUploadService(deps.StorageClient, cfg.GCSBucketName)

	return container
}
