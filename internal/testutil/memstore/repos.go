package memstore

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository  = (*CategoryRepo)(nil)
	_ repository.SupplierRepository  = (*SupplierRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ repository.OrderRepository     = (*OrderRepo)(nil)
	_ repository.OrderItemRepository = (*OrderItemRepo)(nil)
	_ repository.UserRepository      = (*UserRepo)(nil)
)

// ── Category ──────────────────────────────────────────────────────────────────

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	defer r.s.lock()()
	r.s.categories.insert(c)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	defer r.s.lock()()
	return r.s.categories.get(id), nil
}

func (r *CategoryRepo) List(context.Context) ([]*entity.Category, error) {
	defer r.s.lock()()
	return r.s.categories.all(), nil
}

func (r *CategoryRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Category, error) {
	defer r.s.lock()()
	return r.s.categories.byIDs(ids), nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	defer r.s.lock()()
	return found(r.s.categories.replace(c))
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.categories.remove(id))
}

// ── Supplier ──────────────────────────────────────────────────────────────────

type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) Create(_ context.Context, v *entity.Supplier) error {
	defer r.s.lock()()
	v.CreatedAt, v.UpdatedAt = now(), now()
	r.s.suppliers.insert(v)
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	defer r.s.lock()()
	return r.s.suppliers.get(id), nil
}

func (r *SupplierRepo) List(context.Context) ([]*entity.Supplier, error) {
	defer r.s.lock()()
	return r.s.suppliers.all(), nil
}

func (r *SupplierRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Supplier, error) {
	defer r.s.lock()()
	return r.s.suppliers.byIDs(ids), nil
}

func (r *SupplierRepo) Update(_ context.Context, v *entity.Supplier) error {
	defer r.s.lock()()
	v.UpdatedAt = now()
	return found(r.s.suppliers.replace(v))
}

func (r *SupplierRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.suppliers.remove(id))
}

// ── Warehouse ─────────────────────────────────────────────────────────────────

type WarehouseRepo struct{ s *Store }

func (r *WarehouseRepo) Create(_ context.Context, v *entity.Warehouse) error {
	defer r.s.lock()()
	v.CreatedAt, v.UpdatedAt = now(), now()
	r.s.warehouses.insert(v)
	return nil
}

func (r *WarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	defer r.s.lock()()
	return r.s.warehouses.get(id), nil
}

func (r *WarehouseRepo) List(context.Context) ([]*entity.Warehouse, error) {
	defer r.s.lock()()
	return r.s.warehouses.all(), nil
}

func (r *WarehouseRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Warehouse, error) {
	defer r.s.lock()()
	return r.s.warehouses.byIDs(ids), nil
}

func (r *WarehouseRepo) Update(_ context.Context, v *entity.Warehouse) error {
	defer r.s.lock()()
	v.UpdatedAt = now()
	return found(r.s.warehouses.replace(v))
}

func (r *WarehouseRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.warehouses.remove(id))
}

// ── Product ───────────────────────────────────────────────────────────────────

type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.lock()()
	if r.skuTaken(p.SKU, 0) {
		return domain.ErrDuplicate
	}
	p.CreatedAt, p.UpdatedAt = now(), now()
	r.s.products.insert(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.s.lock()()
	return r.s.products.get(id), nil
}

func (r *ProductRepo) List(context.Context) ([]*entity.Product, error) {
	defer r.s.lock()()
	return r.s.products.all(), nil
}

func (r *ProductRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	defer r.s.lock()()
	return r.s.products.byIDs(ids), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.s.lock()()
	if r.skuTaken(p.SKU, p.ID) {
		return domain.ErrDuplicate
	}
	p.UpdatedAt = now()
	return found(r.s.products.replace(p))
}

func (r *ProductRepo) UpdateCategory(_ context.Context, productID, categoryID int64) error {
	defer r.s.lock()()
	p := r.s.products.get(productID)
	if p == nil {
		return domain.ErrNotFound
	}
	p.CategoryID = &categoryID
	p.UpdatedAt = now()
	r.s.products.replace(p)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.products.remove(id))
}

func (r *ProductRepo) skuTaken(sku string, exceptID int64) bool {
	for _, p := range r.s.products.rows {
		if p.SKU == sku && p.ID != exceptID {
			return true
		}
	}
	return false
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// InventoryRepo no valida claves foráneas: permite sembrar filas huérfanas.
type InventoryRepo struct{ s *Store }

func (r *InventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	defer r.s.lock()()
	inv.LastUpdated = now()
	r.s.inventory.insert(inv)
	return nil
}

func (r *InventoryRepo) GetByID(_ context.Context, id int64) (*entity.Inventory, error) {
	defer r.s.lock()()
	return r.s.inventory.get(id), nil
}

// GetForUpdate el bloqueo lo da TxRunner.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.GetByID(ctx, id)
}

func (r *InventoryRepo) List(context.Context) ([]*entity.Inventory, error) {
	defer r.s.lock()()
	return r.s.inventory.all(), nil
}

func (r *InventoryRepo) Update(_ context.Context, inv *entity.Inventory) error {
	defer r.s.lock()()
	inv.LastUpdated = now()
	return found(r.s.inventory.replace(inv))
}

func (r *InventoryRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.inventory.remove(id))
}

func (r *InventoryRepo) FirstByProductForUpdate(_ context.Context, productID int64) (*entity.Inventory, error) {
	defer r.s.lock()()
	for _, inv := range r.s.inventory.rows {
		if inv.ProductID == productID {
			return clone(inv), nil
		}
	}
	return nil, nil
}

func (r *InventoryRepo) DecrementIfAvailable(_ context.Context, inventoryID int64, n int) (bool, error) {
	defer r.s.lock()()
	i := r.s.inventory.index(inventoryID)
	if i < 0 || r.s.inventory.rows[i].Quantity < n {
		return false, nil
	}
	row := clone(r.s.inventory.rows[i])
	row.Quantity -= n
	row.LastUpdated = now()
	r.s.inventory.rows[i] = row
	return true, nil
}

// Quantity atajo para tests: cantidad actual de la fila (-1 si no existe).
func (r *InventoryRepo) Quantity(id int64) int {
	defer r.s.lock()()
	if inv := r.s.inventory.get(id); inv != nil {
		return inv.Quantity
	}
	return -1
}

// ── Order ─────────────────────────────────────────────────────────────────────

type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	defer r.s.lock()()
	if o.OrderDate.IsZero() {
		o.OrderDate = now()
	}
	r.s.orders.insert(o)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	defer r.s.lock()()
	return r.s.orders.get(id), nil
}

func (r *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) List(context.Context) ([]*entity.Order, error) {
	defer r.s.lock()()
	return r.s.orders.all(), nil
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	defer r.s.lock()()
	return found(r.s.orders.replace(o))
}

func (r *OrderRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.orders.remove(id))
}

// ── OrderItem ─────────────────────────────────────────────────────────────────

type OrderItemRepo struct{ s *Store }

func (r *OrderItemRepo) Create(_ context.Context, it *entity.OrderItem) error {
	defer r.s.lock()()
	if r.s.orderItemFault != nil {
		if err := r.s.orderItemFault(it); err != nil {
			return err
		}
	}
	r.s.orderItems.insert(it)
	return nil
}

func (r *OrderItemRepo) GetByID(_ context.Context, id int64) (*entity.OrderItem, error) {
	defer r.s.lock()()
	return r.s.orderItems.get(id), nil
}

func (r *OrderItemRepo) List(context.Context) ([]*entity.OrderItem, error) {
	defer r.s.lock()()
	return r.s.orderItems.all(), nil
}

func (r *OrderItemRepo) ListByOrder(_ context.Context, orderID int64) ([]*entity.OrderItem, error) {
	defer r.s.lock()()
	return r.s.orderItems.filter(func(it *entity.OrderItem) bool { return it.OrderID == orderID }), nil
}

func (r *OrderItemRepo) CountByOrder(ctx context.Context, orderID int64) (int, error) {
	items, err := r.ListByOrder(ctx, orderID)
	return len(items), err
}

func (r *OrderItemRepo) Update(_ context.Context, it *entity.OrderItem) error {
	defer r.s.lock()()
	return found(r.s.orderItems.replace(it))
}

func (r *OrderItemRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.orderItems.remove(id))
}

// Count atajo para tests.
func (r *OrderItemRepo) Count() int {
	defer r.s.lock()()
	return len(r.s.orderItems.rows)
}

// ── User ──────────────────────────────────────────────────────────────────────

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	defer r.s.lock()()
	if r.usernameTaken(u.Username, 0) {
		return domain.ErrDuplicate
	}
	r.s.users.insert(u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	defer r.s.lock()()
	return r.s.users.get(id), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	defer r.s.lock()()
	for _, u := range r.s.users.rows {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(context.Context) ([]*entity.User, error) {
	defer r.s.lock()()
	return r.s.users.all(), nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	defer r.s.lock()()
	if r.usernameTaken(u.Username, u.ID) {
		return domain.ErrDuplicate
	}
	return found(r.s.users.replace(u))
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lock()()
	return found(r.s.users.remove(id))
}

func (r *UserRepo) usernameTaken(username string, exceptID int64) bool {
	for _, u := range r.s.users.rows {
		if u.Username == username && u.ID != exceptID {
			return true
		}
	}
	return false
}

func found(ok bool) error {
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
