// Package memstore implementa los repositorios del dominio en memoria para tests.
// Las transacciones se serializan con un mutex y se revierten si la función devuelve error.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// Store base de datos en memoria.
type Store struct {
	mu   sync.Mutex // protege las tablas
	txMu sync.Mutex // una transacción a la vez

	categories *table[entity.Category]
	suppliers  *table[entity.Supplier]
	warehouses *table[entity.Warehouse]
	products   *table[entity.Product]
	inventory  *table[entity.Inventory]
	orders     *table[entity.Order]
	orderItems *table[entity.OrderItem]
	users      *table[entity.User]

	// orderItemFault si no es nil se evalúa antes de cada alta de línea de orden.
	orderItemFault func(*entity.OrderItem) error
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		categories: newTable(func(v *entity.Category) *int64 { return &v.ID }),
		suppliers:  newTable(func(v *entity.Supplier) *int64 { return &v.ID }),
		warehouses: newTable(func(v *entity.Warehouse) *int64 { return &v.ID }),
		products:   newTable(func(v *entity.Product) *int64 { return &v.ID }),
		inventory:  newTable(func(v *entity.Inventory) *int64 { return &v.ID }),
		orders:     newTable(func(v *entity.Order) *int64 { return &v.ID }),
		orderItems: newTable(func(v *entity.OrderItem) *int64 { return &v.ID }),
		users:      newTable(func(v *entity.User) *int64 { return &v.ID }),
	}
}

func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{s: s} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{s: s} }
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }
func (s *Store) OrderItems() *OrderItemRepo { return &OrderItemRepo{s: s} }
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// FailOrderItemCreate hace que las altas de líneas devuelvan err (nil lo desactiva).
func (s *Store) FailOrderItemCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.orderItemFault = nil
		return
	}
	s.orderItemFault = func(*entity.OrderItem) error { return err }
}

// Ping siempre responde; sirve como Pinger del health check.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	categories []*entity.Category
	suppliers  []*entity.Supplier
	warehouses []*entity.Warehouse
	products   []*entity.Product
	inventory  []*entity.Inventory
	orders     []*entity.Order
	orderItems []*entity.OrderItem
	users      []*entity.User
}

func (s *Store) snapshot() snapshot {
	defer s.lock()()
	return snapshot{
		categories: s.categories.all(),
		suppliers:  s.suppliers.all(),
		warehouses: s.warehouses.all(),
		products:   s.products.all(),
		inventory:  s.inventory.all(),
		orders:     s.orders.all(),
		orderItems: s.orderItems.all(),
		users:      s.users.all(),
	}
}

// restore vuelve las filas al estado del snapshot; los contadores de ID no retroceden (como una secuencia).
func (s *Store) restore(snap snapshot) {
	defer s.lock()()
	s.categories.rows = snap.categories
	s.suppliers.rows = snap.suppliers
	s.warehouses.rows = snap.warehouses
	s.products.rows = snap.products
	s.inventory.rows = snap.inventory
	s.orders.rows = snap.orders
	s.orderItems.rows = snap.orderItems
	s.users.rows = snap.users
}

var (
	_ inventory.TxRunner    = (*TxRunner)(nil)
	_ usecase.OrderTxRunner = (*TxRunner)(nil)
)

// TxRunner transacciones en memoria: serializadas y con rollback por snapshot.
type TxRunner struct {
	s *Store
}

func (r *TxRunner) RunStock(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	itemRepo repository.OrderItemRepository,
) error) error {
	return r.run(ctx, func() error {
		return fn(r.s.Inventory(), r.s.OrderItems())
	})
}

func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
) error) error {
	return r.run(ctx, func() error {
		return fn(r.s.Orders(), r.s.OrderItems())
	})
}

func (r *TxRunner) run(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	if err := fn(); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }
