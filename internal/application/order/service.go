package order

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/medigas/backend/internal/domain/catalog"
	"github.com/medigas/backend/internal/domain/order"
	"github.com/medigas/backend/internal/domain/shared"
)

// DefaultProcessingDelay is the fixed simulated order-processing
// latency; there is no real transport behind a submission
const DefaultProcessingDelay = 2 * time.Second

// Service drives the order form: product options, field validation and
// the simulated submission flow. A single submission may be in flight
// at a time; a second submit while one is pending is rejected instead
// of racing it.
type Service struct {
	store    *catalog.Store
	sequence *order.CustomerSequence
	delay    time.Duration
	log      *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	pending *time.Timer
	status  string
	last    *order.Confirmation
}

// NewService creates an order service over the catalog store
func NewService(store *catalog.Store, delay time.Duration, log *zap.Logger) *Service {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Service{
		store:    store,
		sequence: order.NewCustomerSequence(),
		delay:    delay,
		log:      log.Named("order"),
		now:      time.Now,
		status:   StatusIdle,
	}
}

// CurrentCustomerID returns the customer id for the current counter
// position, shown in the form before any submission
func (s *Service) CurrentCustomerID() string {
	return s.sequence.CurrentID()
}

// ProductOptions builds the product selector: a "please select"
// placeholder followed by one option per catalog entry in catalog
// order, each carrying its price as option metadata
func (s *Service) ProductOptions() []ProductOption {
	options := make([]ProductOption, 0, s.store.Len()+1)
	options = append(options, ProductOption{Value: "", Label: "--Select a product--"})
	for _, p := range s.store.All() {
		options = append(options, ProductOption{
			Value:     p.SelectionKey(),
			Label:     fmt.Sprintf("%s - %s", p.SelectionKey(), p.Price.Format()),
			Price:     p.Price.Amount().IntPart(),
			ProductID: p.ID,
		})
	}
	return options
}

// ValidateField applies the form rule table to one field
func (s *Service) ValidateField(name, value string) order.FieldResult {
	return order.ValidateFieldAt(name, value, s.now())
}

// ValidateForm validates every form field without short-circuiting
func (s *Service) ValidateForm(req SubmitRequest) ([]order.FieldResult, bool) {
	return order.ValidateFormAt(formFields(req), s.now())
}

// Submit processes an order submission. On validation failure it
// returns the per-field results alongside a single blocking error and
// changes no state. On success it advances the customer sequence,
// prices the draft and schedules the confirmation to appear after the
// simulated processing delay.
func (s *Service) Submit(req SubmitRequest) (*SubmitReceipt, []order.FieldResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusProcessing {
		return nil, nil, shared.ErrSubmissionPending
	}

	now := s.now()
	results, valid := order.ValidateFormAt(formFields(req), now)
	if !valid {
		return nil, results, shared.ErrValidationFailed
	}

	product, err := s.store.FindByKey(req.Product)
	if err != nil {
		return nil, results, shared.NewDomainError("INVALID_PRODUCT", "Selected product is not in the catalog")
	}

	// Quantity is parsed before the sequence advances so a malformed
	// value cannot burn a customer id
	if _, err := order.ParseQuantity(req.Quantity); err != nil {
		return nil, results, err
	}

	deliveryDate, err := time.ParseInLocation(order.DeliveryDateLayout, req.DeliveryDate, now.Location())
	if err != nil {
		return nil, results, shared.NewDomainError("INVALID_DELIVERY_DATE", "Enter a valid delivery date")
	}

	customerID := s.sequence.Next()
	draft, err := order.NewDraft(customerID, req.FullName, req.Email, req.Phone,
		req.Product, req.Quantity, product.Price, req.Address, deliveryDate)
	if err != nil {
		return nil, results, err
	}

	s.status = StatusProcessing
	s.pending = time.AfterFunc(s.delay, func() {
		s.complete(draft)
	})

	s.log.Info("Order submission accepted",
		zap.String("customer_id", customerID),
		zap.String("product", draft.ProductKey),
		zap.Int64("quantity", draft.Quantity),
		zap.Duration("processing_delay", s.delay),
	)

	return &SubmitReceipt{
		CustomerID: customerID,
		Status:     StatusProcessing,
		ReadyAt:    now.Add(s.delay),
	}, results, nil
}

// complete runs once the simulated latency has elapsed
func (s *Service) complete(draft *order.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmation := draft.Confirm(s.now())
	s.last = &confirmation
	s.pending = nil
	s.status = StatusConfirmed

	s.log.Info("Order processed",
		zap.String("customer_id", confirmation.CustomerID),
		zap.String("total", confirmation.Total),
	)
}

// Status reports the submission state: idle, processing or confirmed
func (s *Service) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Confirmation returns the most recent confirmation, if one exists
func (s *Service) Confirmation() (*order.Confirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, false
	}
	return s.last, true
}

// Cancel stops a pending submission, if any, and reports whether one
// was cancelled. Used on shutdown; the page itself only guards with
// the disabled submit control.
func (s *Service) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return false
	}
	stopped := s.pending.Stop()
	s.pending = nil
	s.status = StatusIdle
	if stopped {
		s.log.Info("Pending order submission cancelled")
	}
	return stopped
}

// formFields projects the request into the page's input order
func formFields(req SubmitRequest) []order.FieldValue {
	return []order.FieldValue{
		{Name: order.FieldFullName, Value: req.FullName},
		{Name: order.FieldEmail, Value: req.Email},
		{Name: order.FieldPhone, Value: req.Phone},
		{Name: "product", Value: req.Product},
		{Name: "quantity", Value: req.Quantity},
		{Name: "address", Value: req.Address},
		{Name: order.FieldDeliveryDate, Value: req.DeliveryDate},
	}
}
