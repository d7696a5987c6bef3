package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/configurator"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/log"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/types"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound          = errors.New("configuration session not found")
	ErrCustomizationUnavailable = errors.New("customization not available for this selection")
	ErrCustomizationSuperseded  = errors.New("customization was superseded")
	ErrNoActiveCustomization    = errors.New("no active customization")
)

// InvalidSelectionError carries the validator's messages across the checkout
// boundary.
type InvalidSelectionError struct {
	Messages []string
}

func (e *InvalidSelectionError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// configSession is one live editing session. The engine is single-owner; the
// mutex serializes HTTP handlers hitting the same session. fetchGen guards
// against a nested catalog fetch resolving after the customization it was
// started for has been closed or replaced.
type configSession struct {
	mu          sync.Mutex
	id          string
	fulfillment configurator.Fulfillment
	engine      *configurator.Engine
	sub         *configurator.Engine
	fetchGen    uint64
}

type SessionService struct {
	catalog  ICatalogService
	sessions cmap.ConcurrentMap[string, *configSession]
}

var _ ISessionService = (*SessionService)(nil)

type ISessionService interface {
	Start(ctx context.Context, productID uint64, fulfillment string) (*types.SessionState, error)
	Get(sessionID string) (*types.SessionState, error)
	SelectVariant(sessionID string, groupID, variantID uint64) (*types.SessionState, error)
	ToggleAddon(sessionID string, pricingEntryID uint64, quantity int) (*types.SessionState, error)
	SetQuantity(sessionID string, quantity int) (*types.SessionState, error)
	SetCookingNote(sessionID string, note string) (*types.SessionState, error)
	ToggleComboProduct(sessionID string, comboGroupID, productID, comboGroupProductID, defaultVariantID uint64) (*types.SessionState, error)
	OpenCustomization(ctx context.Context, sessionID string, comboGroupID uint64, index int) (*types.SessionState, error)
	SubSelectVariant(sessionID string, groupID, variantID uint64) (*types.SessionState, error)
	SubToggleAddon(sessionID string, pricingEntryID uint64, quantity int) (*types.SessionState, error)
	SaveCustomization(sessionID string) (*types.SessionState, error)
	CancelCustomization(sessionID string) (*types.SessionState, error)
	End(sessionID string)
	// Checkout validates the session and flattens it into the cart payload.
	Checkout(sessionID string) (configurator.CartPayload, string, string, error)
}

func NewSessionService(catalog ICatalogService) *SessionService {
	return &SessionService{
		catalog:  catalog,
		sessions: cmap.New[*configSession](),
	}
}

func parseFulfillment(s string) configurator.Fulfillment {
	switch configurator.Fulfillment(s) {
	case configurator.FulfillmentPickup:
		return configurator.FulfillmentPickup
	case configurator.FulfillmentDineIn:
		return configurator.FulfillmentDineIn
	default:
		return configurator.FulfillmentDelivery
	}
}

func (s *SessionService) Start(ctx context.Context, productID uint64, fulfillment string) (*types.SessionState, error) {
	snapshot, err := s.catalog.GetSnapshot(ctx, productID)
	if err != nil {
		return nil, err
	}

	sess := &configSession{
		id:          uuid.NewString(),
		fulfillment: parseFulfillment(fulfillment),
		engine:      configurator.New(snapshot),
	}
	s.sessions.Set(sess.id, sess)
	log.L.Info("configuration session started",
		zap.String("session_id", sess.id),
		zap.Uint64("product_id", productID),
	)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.state(sess), nil
}

func (s *SessionService) Get(sessionID string) (*types.SessionState, error) {
	return s.mutate(sessionID, func(*configSession) {})
}

func (s *SessionService) SelectVariant(sessionID string, groupID, variantID uint64) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		sess.engine.SelectVariant(groupID, variantID)
	})
}

func (s *SessionService) ToggleAddon(sessionID string, pricingEntryID uint64, quantity int) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		sess.engine.ToggleAddon(pricingEntryID, quantity)
	})
}

func (s *SessionService) SetQuantity(sessionID string, quantity int) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		sess.engine.SetQuantity(quantity)
	})
}

func (s *SessionService) SetCookingNote(sessionID string, note string) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		sess.engine.SetCookingNote(note)
	})
}

func (s *SessionService) ToggleComboProduct(sessionID string, comboGroupID, productID, comboGroupProductID, defaultVariantID uint64) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		_, hadActive := sess.engine.ActiveCustomization()
		sess.engine.ToggleComboProduct(comboGroupID, productID, comboGroupProductID, defaultVariantID)
		if _, ok := sess.engine.ActiveCustomization(); hadActive && !ok {
			// the pick under customization was removed; any in-flight
			// catalog fetch for it must not install a sub-session
			sess.sub = nil
			sess.fetchGen++
		}
	})
}

// OpenCustomization opens the nested sub-session for one combo pick and
// fetches its catalog. Opening replaces any active customization. A fetch
// that resolves after the target moved on is discarded (stale guard).
func (s *SessionService) OpenCustomization(ctx context.Context, sessionID string, comboGroupID uint64, index int) (*types.SessionState, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	if !sess.engine.OpenComboCustomization(comboGroupID, index) {
		sess.mu.Unlock()
		return nil, ErrCustomizationUnavailable
	}
	nestedProductID := sess.engine.ComboSelections(comboGroupID)[index].ProductID
	sess.sub = nil
	sess.fetchGen++
	gen := sess.fetchGen
	sess.mu.Unlock()

	// fetch outside the lock; other mutations may land meanwhile
	snapshot, err := s.catalog.GetSnapshot(ctx, nestedProductID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.fetchGen != gen {
		return nil, ErrCustomizationSuperseded
	}
	if err != nil {
		// parent state stays intact; the UI shows the fetch error
		sess.engine.CloseComboCustomization()
		return nil, err
	}
	// generation matched, so the target is still the one we opened;
	// re-read the pick under the lock rather than trusting the copy
	target, ok := sess.engine.ActiveCustomization()
	if !ok {
		return nil, ErrCustomizationSuperseded
	}
	sel := sess.engine.ComboSelections(target.ComboGroupID)[target.Index]
	sess.sub = configurator.NewSub(snapshot, sel.VariantID, sel.Pricing)
	return s.state(sess), nil
}

func (s *SessionService) SubSelectVariant(sessionID string, groupID, variantID uint64) (*types.SessionState, error) {
	return s.mutateSub(sessionID, func(sub *configurator.Engine) {
		sub.SelectVariant(groupID, variantID)
	})
}

func (s *SessionService) SubToggleAddon(sessionID string, pricingEntryID uint64, quantity int) (*types.SessionState, error) {
	return s.mutateSub(sessionID, func(sub *configurator.Engine) {
		sub.ToggleAddon(pricingEntryID, quantity)
	})
}

// SaveCustomization folds the sub-session's priced selections back into the
// parent pick and discards the sub-session.
func (s *SessionService) SaveCustomization(sessionID string) (*types.SessionState, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	target, active := sess.engine.ActiveCustomization()
	if !active || sess.sub == nil {
		return nil, ErrNoActiveCustomization
	}

	sess.engine.UpdateComboItemPricing(target.ComboGroupID, target.Index, sess.sub.SelectedPricing())
	if pg, ok := sess.sub.Snapshot().PrimaryGroup(); ok {
		if variantID, ok := sess.sub.SelectedVariant(pg.ID); ok {
			sess.engine.SetComboItemVariant(target.ComboGroupID, target.Index, variantID)
		}
	}

	sess.sub = nil
	sess.fetchGen++
	sess.engine.CloseComboCustomization()
	return s.state(sess), nil
}

func (s *SessionService) CancelCustomization(sessionID string) (*types.SessionState, error) {
	return s.mutate(sessionID, func(sess *configSession) {
		sess.sub = nil
		sess.fetchGen++
		sess.engine.CloseComboCustomization()
	})
}

func (s *SessionService) End(sessionID string) {
	if sess, ok := s.sessions.Get(sessionID); ok {
		sess.mu.Lock()
		sess.fetchGen++
		sess.mu.Unlock()
	}
	s.sessions.Remove(sessionID)
}

func (s *SessionService) Checkout(sessionID string) (configurator.CartPayload, string, string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return configurator.CartPayload{}, "", "", ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if res := sess.engine.Validate(); !res.IsValid {
		return configurator.CartPayload{}, "", "", &InvalidSelectionError{Messages: res.Errors}
	}
	payload := sess.engine.BuildCartPayload(sess.fulfillment)
	return payload, sess.engine.Snapshot().Product.Name, string(sess.fulfillment), nil
}

func (s *SessionService) mutate(sessionID string, fn func(*configSession)) (*types.SessionState, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess)
	return s.state(sess), nil
}

func (s *SessionService) mutateSub(sessionID string, fn func(*configurator.Engine)) (*types.SessionState, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	_, active := sess.engine.ActiveCustomization()
	if !active || sess.sub == nil {
		return nil, ErrNoActiveCustomization
	}
	fn(sess.sub)
	return s.state(sess), nil
}

// state derives the full UI state. Caller holds the session lock.
func (s *SessionService) state(sess *configSession) *types.SessionState {
	engine := sess.engine
	snapshot := engine.Snapshot()
	res := engine.Validate()

	st := &types.SessionState{
		SessionID:        sess.id,
		ProductID:        snapshot.Product.ID,
		ProductName:      snapshot.Product.Name,
		Fulfillment:      string(sess.fulfillment),
		SelectedVariants: selectedVariants(engine),
		SelectedAddons:   selectedAddons(engine),
		ComboSelections:  make([]types.ComboGroupSelections, 0),
		Quantity:         engine.Quantity(),
		CookingNote:      engine.CookingNote(),
		IsValid:          res.IsValid,
		Errors:           res.Errors,
		Price:            engine.Price(sess.fulfillment),
	}
	for _, g := range snapshot.ComboGroups {
		selections := engine.ComboSelections(g.ID)
		if len(selections) == 0 {
			continue
		}
		st.ComboSelections = append(st.ComboSelections, types.ComboGroupSelections{
			ComboGroupID: g.ID,
			Selections:   selections,
		})
	}

	if target, ok := engine.ActiveCustomization(); ok {
		cust := &types.CustomizationState{
			ComboGroupID: target.ComboGroupID,
			Index:        target.Index,
		}
		if sess.sub != nil {
			subRes := sess.sub.Validate()
			cust.Loaded = true
			cust.Snapshot = sess.sub.Snapshot()
			cust.SelectedVariants = selectedVariants(sess.sub)
			cust.SelectedAddons = selectedAddons(sess.sub)
			cust.IsValid = subRes.IsValid
			cust.Errors = subRes.Errors
			// packaging never folds into the parent pick, so the nested
			// preview prices without it
			cust.Price = sess.sub.Price(configurator.FulfillmentPickup)
		}
		st.Customization = cust
	}
	return st
}

func selectedVariants(e *configurator.Engine) []types.SelectedVariant {
	out := make([]types.SelectedVariant, 0)
	for _, g := range e.Snapshot().VariantGroups {
		if variantID, ok := e.SelectedVariant(g.ID); ok {
			out = append(out, types.SelectedVariant{GroupID: g.ID, VariantID: variantID})
		}
	}
	return out
}

func selectedAddons(e *configurator.Engine) []types.SelectedAddon {
	out := make([]types.SelectedAddon, 0)
	for _, a := range e.Snapshot().Addons {
		if qty := e.AddonQuantity(a.ID); qty > 0 {
			out = append(out, types.SelectedAddon{AddonID: a.ID, Quantity: qty})
		}
	}
	return out
}
