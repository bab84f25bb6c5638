package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/memory"
)

type orderFixture struct {
	store  *memory.Store
	svc    *OrderService
	mail   *stubMailQueue
	events *stubPublisher
	buyer  domain.Actor
	farmer domain.Actor
	admin  domain.Actor
	p1, p2 *domain.Product
}

func newOrderFixture(t *testing.T, strict, singleSeller bool) *orderFixture {
	t.Helper()
	store := memory.NewStore()
	f := &orderFixture{
		store:  store,
		mail:   &stubMailQueue{},
		events: &stubPublisher{},
		buyer:  seedUser(store, "b1", domain.RoleBuyer),
		farmer: seedUser(store, "f1", domain.RoleFarmer),
		admin:  seedUser(store, "a1", domain.RoleAdmin),
	}
	f.svc = NewOrderService(store.Orders(), store.Products(), discardLogger, OrderOptions{
		StrictTransitions: strict,
		SingleSeller:      singleSeller,
		Mail:              f.mail,
		Events:            f.events,
	})

	catalog := NewCatalogService(store.Products(), discardLogger)
	var err error
	f.p1, err = catalog.Create(context.Background(), f.farmer, domain.ProductDraft{Name: "Tomatoes", Price: 40, Unit: "kg"})
	require.NoError(t, err)
	f.p2, err = catalog.Create(context.Background(), f.farmer, domain.ProductDraft{Name: "Onions", Price: 30, Unit: "kg"})
	require.NoError(t, err)
	return f
}

func (f *orderFixture) twoItemInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Items: []domain.OrderItem{
			{ProductID: f.p1.ID, ProductName: "Tomatoes", Quantity: 2, Unit: "kg", Price: 40, Total: 80},
			{ProductID: f.p2.ID, ProductName: "Onions", Quantity: 1, Unit: "kg", Price: 30, Total: 30},
		},
		DeliveryAddress: "12 Market Rd",
		PaymentMethod:   "cod",
	}
}

func TestOrderService_Create(t *testing.T) {
	f := newOrderFixture(t, true, false)

	o, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)

	assert.Equal(t, 110.0, o.TotalAmount)
	assert.Equal(t, domain.OrderPending, o.Status)
	assert.Equal(t, "f1", o.FarmerID)
	assert.Equal(t, f.farmer.Name, o.FarmerName)
	assert.Equal(t, "b1", o.BuyerID)
	assert.Equal(t, f.buyer.Email, o.BuyerEmail)
	assert.Len(t, o.Items, 2)

	stored, err := f.store.Orders().FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.TotalAmount, stored.TotalAmount)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, SubjectOrderCreated, f.events.events[0].subject)
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, f.buyer.Email, f.mail.sent[0].To)
	assert.Contains(t, f.mail.sent[0].HTML, o.ID)
}

func TestOrderService_Create_TrustsClientTotals(t *testing.T) {
	f := newOrderFixture(t, true, false)
	in := ports.CreateOrderInput{Items: []domain.OrderItem{
		{ProductID: f.p1.ID, Quantity: 2, Price: 40, Total: 1},
	}}

	o, err := f.svc.Create(context.Background(), f.buyer, in)
	require.NoError(t, err)
	assert.Equal(t, 1.0, o.TotalAmount)
}

func TestOrderService_Create_EmptyOrder(t *testing.T) {
	f := newOrderFixture(t, true, false)

	_, err := f.svc.Create(context.Background(), f.buyer, ports.CreateOrderInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestOrderService_Create_UnknownProductPersistsNothing(t *testing.T) {
	f := newOrderFixture(t, true, false)
	in := f.twoItemInput()
	in.Items[1].ProductID = "ghost"

	_, err := f.svc.Create(context.Background(), f.buyer, in)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	var pnf *domain.ProductNotFoundError
	require.True(t, errors.As(err, &pnf))
	assert.Equal(t, "ghost", pnf.ProductID)

	n, _ := f.store.Orders().Count(context.Background(), "")
	assert.Zero(t, n)
	assert.Empty(t, f.events.events)
	assert.Empty(t, f.mail.sent)
}

func TestOrderService_Create_OnlyBuyers(t *testing.T) {
	f := newOrderFixture(t, true, false)

	for _, actor := range []domain.Actor{f.farmer, f.admin, {}} {
		_, err := f.svc.Create(context.Background(), actor, f.twoItemInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestOrderService_Create_MixedSellers(t *testing.T) {
	f := newOrderFixture(t, true, true)
	other := seedUser(f.store, "f2", domain.RoleFarmer)
	foreign, err := NewCatalogService(f.store.Products(), discardLogger).
		Create(context.Background(), other, domain.ProductDraft{Name: "Milk"})
	require.NoError(t, err)

	in := f.twoItemInput()
	in.Items[1].ProductID = foreign.ID
	_, err = f.svc.Create(context.Background(), f.buyer, in)
	assert.ErrorIs(t, err, domain.ErrMixedSellers)

	lenient := NewOrderService(f.store.Orders(), f.store.Products(), discardLogger, OrderOptions{})
	o, err := lenient.Create(context.Background(), f.buyer, in)
	require.NoError(t, err)
	assert.Equal(t, "f1", o.FarmerID, "first item's farmer is the seller of record")
}

func TestOrderService_Create_DeliveryFailuresAreNonFatal(t *testing.T) {
	f := newOrderFixture(t, true, false)
	f.mail.full = true
	f.events.err = errors.New("broker down")

	_, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)
}

func TestOrderService_ListScoping(t *testing.T) {
	f := newOrderFixture(t, true, false)
	otherBuyer := seedUser(f.store, "b2", domain.RoleBuyer)
	otherFarmer := seedUser(f.store, "f2", domain.RoleFarmer)

	_, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), otherBuyer, f.twoItemInput())
	require.NoError(t, err)

	cases := []struct {
		name  string
		actor domain.Actor
		want  int
	}{
		{"buyer sees own", f.buyer, 1},
		{"seller sees sold", f.farmer, 2},
		{"unrelated farmer sees none", otherFarmer, 0},
		{"admin sees all", f.admin, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.svc.List(context.Background(), tc.actor)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}

	_, err = f.svc.List(context.Background(), domain.Actor{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderService_Get(t *testing.T) {
	f := newOrderFixture(t, true, false)
	stranger := seedUser(f.store, "b2", domain.RoleBuyer)

	o, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)

	for _, actor := range []domain.Actor{f.buyer, f.farmer, f.admin} {
		_, err := f.svc.Get(context.Background(), actor, o.ID)
		assert.NoError(t, err)
	}
	_, err = f.svc.Get(context.Background(), stranger, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.Get(context.Background(), f.buyer, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_SetStatus(t *testing.T) {
	f := newOrderFixture(t, true, false)
	o, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.buyer, o.ID, "confirmed"), domain.ErrForbidden)
	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "shipped"), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.farmer, "missing", "confirmed"), domain.ErrNotFound)
	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "delivered"), domain.ErrInvalidTransition)

	require.NoError(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "confirmed"))
	require.NoError(t, f.svc.SetStatus(context.Background(), f.admin, o.ID, "delivered"))
	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "cancelled"), domain.ErrInvalidTransition)

	stored, err := f.store.Orders().FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, stored.Status)

	last := f.events.events[len(f.events.events)-1]
	assert.Equal(t, SubjectOrderStatusChanged, last.subject)
}

func TestOrderService_SetStatus_AnyFarmer(t *testing.T) {
	f := newOrderFixture(t, true, false)
	unrelated := seedUser(f.store, "f9", domain.RoleFarmer)
	o, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.SetStatus(context.Background(), unrelated, o.ID, "cancelled"))
}

func TestOrderService_SetStatus_Lenient(t *testing.T) {
	f := newOrderFixture(t, false, false)
	o, err := f.svc.Create(context.Background(), f.buyer, f.twoItemInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "delivered"))
	require.NoError(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "pending"))
	assert.ErrorIs(t, f.svc.SetStatus(context.Background(), f.farmer, o.ID, "lost"), domain.ErrValidation)
}
