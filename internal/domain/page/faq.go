package page

import (
	"github.com/medigas/backend/internal/domain/shared"
)

// FAQItem is one question/answer pair
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Open     bool   `json:"open"`
}

// Accordion manages a fixed set of FAQ items with single-open
// semantics: opening one closes all others, and clicking the open one
// closes it.
type Accordion struct {
	items []FAQItem
}

// NewAccordion creates an accordion over the given items, all closed
func NewAccordion(items []FAQItem) *Accordion {
	closed := make([]FAQItem, len(items))
	copy(closed, items)
	for i := range closed {
		closed[i].Open = false
	}
	return &Accordion{items: closed}
}

// Toggle flips the item at index. At most one item is open afterwards.
func (a *Accordion) Toggle(index int) error {
	if index < 0 || index >= len(a.items) {
		return shared.NewDomainError("INVALID_FAQ_INDEX", "FAQ item does not exist")
	}

	wasOpen := a.items[index].Open
	for i := range a.items {
		a.items[i].Open = false
	}
	a.items[index].Open = !wasOpen
	return nil
}

// Items returns the current item states
func (a *Accordion) Items() []FAQItem {
	out := make([]FAQItem, len(a.items))
	copy(out, a.items)
	return out
}

// OpenIndex returns the index of the open item, or -1 when all closed
func (a *Accordion) OpenIndex() int {
	for i, item := range a.items {
		if item.Open {
			return i
		}
	}
	return -1
}

// DefaultFAQ returns the page's fixed question set
func DefaultFAQ() []FAQItem {
	return []FAQItem{
		{Question: "How do I know which oxygen cylinder size I need?", Answer: "Cylinder size depends on prescribed flow rate and usage hours; our team helps you match capacity to your therapy plan."},
		{Question: "How quickly can you deliver?", Answer: "Orders placed before noon are delivered the same day within Nairobi; up-country deliveries take 1-2 business days."},
		{Question: "Do you refill cylinders from other suppliers?", Answer: "Yes, we refill any certified medical oxygen cylinder after a mandatory safety inspection."},
		{Question: "Is a prescription required to order medical oxygen?", Answer: "Yes, medical oxygen is a regulated product; a valid prescription is required for all cylinder and concentrator orders."},
	}
}
