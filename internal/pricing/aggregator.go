package pricing

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// TopicUpdated is the global pub/sub topic. Subscribers on it receive
// every recomputation regardless of which narrower topics were requested.
const TopicUpdated = "pricing.updated"

const packageItemID = "package-base"

// Subscriber receives the freshly computed ledger after a recomputation.
// The ledger is shared between subscribers and must not be mutated.
type Subscriber func(*models.Ledger)

// completionOwnership is the explicit allow-list of completion keys each
// calculator owns. Merging honors only these keys per source, so one
// calculator can never clobber another's flag even if a fragment carries
// a stray entry.
var completionOwnership = map[string][]string{
	SectionWings:     {SectionWings},
	SectionSauces:    {SectionSauces},
	SectionDips:      {SectionDips},
	SectionSides:     {SectionSides},
	SectionDesserts:  {SectionDesserts},
	SectionBeverages: {SectionBeverages},
	SectionRemovals:  {SectionRemovals},
}

// Aggregator orchestrates the specialized calculators over one
// configuration snapshot, merges their fragments into a unified ledger,
// derives totals, caches the result and broadcasts it to subscribers.
// Calculations are synchronous and independent; the only state here is
// the current-ledger cache and the subscriber registry.
type Aggregator struct {
	mu      sync.Mutex
	log     *zap.Logger
	current *models.Ledger
	subs    map[string]map[int]Subscriber
	nextSub int
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithLogger sets the logging component.
func WithLogger(log *zap.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.log = log
	}
}

// NewAggregator creates an Aggregator with no cached ledger and no
// subscribers. Logging defaults to a no-op logger.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		log:  zap.NewNop(),
		subs: make(map[string]map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CalculateQuote prices one configuration snapshot. It builds a fresh
// ledger seeded with the package base item, runs every calculator on its
// slice of the configuration, merges the fragments with provenance tags,
// derives totals and publishes the result under the global topic plus
// any requested topics. Calculator errors are contract violations and
// propagate to the caller unmodified.
func (a *Aggregator) CalculateQuote(snapshot models.Snapshot, topics ...string) (*models.Ledger, error) {
	pkg := snapshot.SelectedPackage
	cfg := snapshot.CurrentConfig

	ledger := NewLedger()
	ledger.Meta.PackageID = pkg.ID
	ledger.Meta.PackageName = pkg.Name
	if err := AddItem(ledger, models.Item{
		ID:        packageItemID,
		Category:  models.CategoryPackage,
		Name:      pkg.Name,
		Quantity:  1,
		BasePrice: pkg.BasePrice,
		Source:    "package",
	}); err != nil {
		return nil, err
	}

	merge(ledger, CalculateWings(cfg.WingDistribution, pkg.WingOptions), SectionWings)
	merge(ledger, CalculateSauces(cfg.Sauces, pkg.SauceOptions), SectionSauces)
	merge(ledger, CalculateDips(cfg.Dips, pkg.DipsIncluded), SectionDips)

	sides, err := CalculateSides(cfg.Sides)
	if err != nil {
		return nil, err
	}
	merge(ledger, sides, SectionSides)

	desserts, err := CalculateDesserts(cfg.Desserts)
	if err != nil {
		return nil, err
	}
	merge(ledger, desserts, SectionDesserts)

	beverages, err := CalculateBeverages(cfg.Beverages)
	if err != nil {
		return nil, err
	}
	merge(ledger, beverages, SectionBeverages)

	merge(ledger, CalculateRemovals(cfg.RemovedItems, pkg.BasePrice, a.log), SectionRemovals)

	if err := Validate(ledger); err != nil {
		return nil, fmt.Errorf("merged ledger failed validation: %w", err)
	}

	guestCount := defaultGuestCount
	if snapshot.EventDetails != nil && snapshot.EventDetails.GuestCount >= 1 {
		guestCount = snapshot.EventDetails.GuestCount
	}
	CalculateTotals(ledger, guestCount)

	a.mu.Lock()
	a.current = ledger
	subscribers := a.collectSubscribers(topics)
	a.mu.Unlock()

	for _, sub := range subscribers {
		a.notify(sub, ledger)
	}

	return ledger, nil
}

// merge copies a calculator fragment into the unified ledger, tagging
// items and modifiers with the calculator name for provenance and
// honoring the completion allow-list for the source.
func merge(dst, fragment *models.Ledger, source string) {
	for id, item := range fragment.Items {
		item.Source = source
		dst.Items[id] = item
	}
	for _, mod := range fragment.Modifiers {
		mod.Source = source
		dst.Modifiers = append(dst.Modifiers, mod)
	}
	for _, key := range completionOwnership[source] {
		if value, ok := fragment.Meta.CompletionStatus[key]; ok {
			dst.Meta.CompletionStatus[key] = value
		}
	}
	if source == SectionRemovals {
		dst.Meta.CapExceeded = fragment.Meta.CapExceeded
		dst.Meta.RemovalBreakdown = fragment.Meta.RemovalBreakdown
	}
}

// collectSubscribers snapshots the callbacks to invoke for this publish:
// global subscribers always, plus any requested narrower topics. Must be
// called with the mutex held.
func (a *Aggregator) collectSubscribers(topics []string) []Subscriber {
	var out []Subscriber
	for _, sub := range a.subs[TopicUpdated] {
		out = append(out, sub)
	}
	for _, topic := range topics {
		if topic == TopicUpdated {
			continue
		}
		for _, sub := range a.subs[topic] {
			out = append(out, sub)
		}
	}
	return out
}

// notify invokes one subscriber, containing panics so a broken listener
// cannot block the rest of the publish.
func (a *Aggregator) notify(sub Subscriber, ledger *models.Ledger) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("subscriber panicked during publish", zap.Any("panic", r))
		}
	}()
	sub(ledger)
}

// Subscribe registers a callback on a topic and returns its unsubscribe
// function. Use TopicUpdated to receive every recomputation.
func (a *Aggregator) Subscribe(topic string, sub Subscriber) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.subs[topic] == nil {
		a.subs[topic] = make(map[int]Subscriber)
	}
	id := a.nextSub
	a.nextSub++
	a.subs[topic][id] = sub

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs[topic], id)
	}
}

// Current returns a deep copy of the cached ledger, or nil when nothing
// has been calculated yet.
func (a *Aggregator) Current() *models.Ledger {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Clone(a.current)
}

// Summary is the condensed view of the current ledger for order-summary
// surfaces.
type Summary struct {
	ItemCount      int           `json:"itemCount"`
	UpchargeCount  int           `json:"upchargeCount"`
	DiscountCount  int           `json:"discountCount"`
	WarningCount   int           `json:"warningCount"`
	Complete       bool          `json:"complete"`
	LastCalculated time.Time     `json:"lastCalculated"`
	Totals         models.Totals `json:"totals"`
}

// Summary condenses the cached ledger. The second return is false when
// no quote has been calculated yet.
func (a *Aggregator) Summary() (Summary, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return Summary{}, false
	}

	s := Summary{
		ItemCount:      len(a.current.Items),
		LastCalculated: a.current.Meta.LastCalculated,
		Totals:         a.current.Totals,
	}
	for _, mod := range a.current.Modifiers {
		switch mod.Kind {
		case models.KindUpcharge:
			s.UpchargeCount++
		case models.KindDiscount:
			s.DiscountCount++
		case models.KindWarning:
			s.WarningCount++
		}
	}
	s.Complete = Complete(a.current)
	return s, true
}

// Complete reports whether every section's completion flag is satisfied.
func Complete(l *models.Ledger) bool {
	for _, done := range l.Meta.CompletionStatus {
		if !done {
			return false
		}
	}
	return true
}

// Reset drops the cached ledger and all subscribers. Intended for tests
// and for tearing down a configurator session.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
	a.subs = make(map[string]map[int]Subscriber)
}
