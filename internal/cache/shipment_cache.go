package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/metrics"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
)

type ShipmentRepository interface {
	GetAllActive(ctx context.Context) ([]*repository.Shipment, error)
}

// ShipmentCache keeps active (non-terminal) shipments in memory.
// Delivered and rejected shipments are evicted on write.
type ShipmentCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.Shipment
	repo  ShipmentRepository
}

func NewShipmentCache(repo ShipmentRepository) *ShipmentCache {
	return &ShipmentCache{
		cache: make(map[string]*repository.Shipment),
		repo:  repo,
	}
}

func (c *ShipmentCache) LoadInitialData(ctx context.Context) error {
	shipments, err := c.repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, shipment := range shipments {
		shipmentCopy := *shipment
		c.cache[shipment.ID] = &shipmentCopy
	}
	metrics.ShipmentCacheItems.Set(float64(len(c.cache)))
	zap.L().Info("loaded active shipments into cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *ShipmentCache) Get(shipmentID string) (*repository.Shipment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	shipment, found := c.cache[shipmentID]
	if !found {
		return nil, false
	}
	shipmentCopy := *shipment
	return &shipmentCopy, true
}

func (c *ShipmentCache) Set(shipment *repository.Shipment) {
	if !isActiveStatus(shipment.Status) {
		c.Delete(shipment.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	shipmentCopy := *shipment
	c.cache[shipment.ID] = &shipmentCopy
	metrics.ShipmentCacheItems.Set(float64(len(c.cache)))
}

func (c *ShipmentCache) Delete(shipmentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[shipmentID]; found {
		delete(c.cache, shipmentID)
		metrics.ShipmentCacheItems.Set(float64(len(c.cache)))
	}
}

func isActiveStatus(status string) bool {
	return status != "delivered" && status != "rejected"
}
