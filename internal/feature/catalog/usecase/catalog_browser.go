// Package usecase implements catalog browsing: fetching, filtering and cart toggling.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	cartentity "yoga_storefront/internal/feature/cart/domain/entity"
	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/shared/apperr"
)

// CatalogRepository abstracts the remote `classes` collection and its `instances` sub-collections.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogRepository interface {
	// ListClasses returns every class definition without instances.
	ListClasses(ctx context.Context) ([]entity.YogaClass, error)
	// ListInstances returns the scheduled instances of one class.
	ListInstances(ctx context.Context, classID int64) ([]entity.ClassInstance, error)
}

// CacheInvalidator is implemented by repositories that cache catalog reads.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Cart is the subset of the cart manager the browser delegates to.
type Cart interface {
	Add(item cartentity.CartItem) bool
	Remove(classID int64) bool
	Contains(classID int64) bool
}

// CatalogBrowser keeps the last successfully fetched catalog and filters it locally.
type CatalogBrowser struct {
	repo CatalogRepository
	cart Cart
	now  func() time.Time

	mu        sync.RWMutex
	classes   []entity.YogaClass
	fetchedAt time.Time
}

// NewCatalogBrowser creates a CatalogBrowser with an empty catalog.
func NewCatalogBrowser(repo CatalogRepository, cart Cart) *CatalogBrowser {
	return &CatalogBrowser{repo: repo, cart: cart, now: time.Now}
}

// FetchCatalog retrieves every class and then each class's instances, and replaces
// the current catalog only if the whole tree was assembled.
// On failure or cancellation the previous catalog is kept and nothing is retried.
func (b *CatalogBrowser) FetchCatalog(ctx context.Context) ([]entity.YogaClass, error) {
	classes, err := b.repo.ListClasses(ctx)
	if err != nil {
		slog.Error("failed to fetch classes", "error", err)
		return nil, apperr.Remote("list classes", err)
	}

	result := make([]entity.YogaClass, 0, len(classes))
	for _, c := range classes {
		instances, err := b.repo.ListInstances(ctx, c.ID)
		if err != nil {
			slog.Error("failed to fetch class instances", "class_id", c.ID, "error", err)
			return nil, apperr.Remote("list instances", err)
		}
		c.Instances = instances
		if c.Instances == nil {
			c.Instances = []entity.ClassInstance{}
		}
		result = append(result, c)
	}

	// ビューが破棄された場合は結果を反映しない
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.classes = result
	b.fetchedAt = b.now()
	b.mu.Unlock()

	slog.Info("catalog fetched", "classes", len(result))
	return cloneAll(result), nil
}

// Refresh fetches the catalog, first dropping cached reads when force is set.
func (b *CatalogBrowser) Refresh(ctx context.Context, force bool) ([]entity.YogaClass, error) {
	if force {
		if inv, ok := b.repo.(CacheInvalidator); ok {
			if err := inv.Invalidate(ctx); err != nil {
				slog.Warn("failed to invalidate catalog cache", "error", err)
			}
		}
	}
	return b.FetchCatalog(ctx)
}

// Classes returns the last successfully fetched catalog.
func (b *CatalogBrowser) Classes() []entity.YogaClass {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneAll(b.classes)
}

// FetchedAt returns when the current catalog was fetched; zero if never.
func (b *CatalogBrowser) FetchedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fetchedAt
}

// Filter applies FilterClasses to the last successfully fetched catalog.
// It never calls the remote store.
func (b *CatalogBrowser) Filter(query string) []entity.YogaClass {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterClasses(b.classes, query)
}

// InCart reports whether the class is in the cart.
func (b *CatalogBrowser) InCart(classID int64) bool {
	return b.cart.Contains(classID)
}

// ToggleCart adds the class to the cart, or removes it if already present.
// It returns whether the class is in the cart afterwards.
// A class without instances is rejected with ErrNoInstances.
func (b *CatalogBrowser) ToggleCart(classID int64) (bool, error) {
	class, ok := b.find(classID)
	if !ok {
		return false, ErrClassNotFound
	}
	if !class.HasInstances() {
		return false, ErrNoInstances
	}

	if b.cart.Contains(classID) {
		b.cart.Remove(classID)
		return false, nil
	}
	b.cart.Add(cartentity.NewCartItem(class))
	return true, nil
}

func (b *CatalogBrowser) find(classID int64) (entity.YogaClass, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, c := range b.classes {
		if c.ID == classID {
			return c.Clone(), true
		}
	}
	return entity.YogaClass{}, false
}

func cloneAll(classes []entity.YogaClass) []entity.YogaClass {
	out := make([]entity.YogaClass, len(classes))
	for i, c := range classes {
		out[i] = c.Clone()
	}
	return out
}
