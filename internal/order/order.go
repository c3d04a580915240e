package order

import (
	"github.com/shopspring/decimal"

	"github.com/jask/lunchtray/internal/catalog"
)

// DefaultTaxRate applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.08")

// Order holds the selections of the active ordering session.
// Each field is nil until chosen.
type Order struct {
	Entree        *catalog.MenuItem
	SideDish      *catalog.MenuItem
	Accompaniment *catalog.MenuItem

	taxRate decimal.Decimal
}

// New returns an empty order that charges the given tax rate.
func New(taxRate decimal.Decimal) *Order {
	return &Order{taxRate: taxRate}
}

func (o *Order) UpdateEntree(item catalog.MenuItem) { o.Entree = &item }

func (o *Order) UpdateSideDish(item catalog.MenuItem) { o.SideDish = &item }

func (o *Order) UpdateAccompaniment(item catalog.MenuItem) { o.Accompaniment = &item }

// Reset clears every selection. The tax rate is kept.
func (o *Order) Reset() {
	o.Entree = nil
	o.SideDish = nil
	o.Accompaniment = nil
}

// Update sets the field matching the item's course and reports whether the
// course was known.
func (o *Order) Update(item catalog.MenuItem) bool {
	switch item.Course {
	case catalog.CourseEntree:
		o.UpdateEntree(item)
	case catalog.CourseSideDish:
		o.UpdateSideDish(item)
	case catalog.CourseAccompaniment:
		o.UpdateAccompaniment(item)
	default:
		return false
	}
	return true
}

// Selected returns the current selection for a course.
func (o *Order) Selected(course catalog.Course) *catalog.MenuItem {
	switch course {
	case catalog.CourseEntree:
		return o.Entree
	case catalog.CourseSideDish:
		return o.SideDish
	case catalog.CourseAccompaniment:
		return o.Accompaniment
	}
	return nil
}

// Items lists the chosen items in course order.
func (o *Order) Items() []catalog.MenuItem {
	var out []catalog.MenuItem
	for _, it := range []*catalog.MenuItem{o.Entree, o.SideDish, o.Accompaniment} {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// Empty reports whether nothing has been chosen.
func (o *Order) Empty() bool {
	return o.Entree == nil && o.SideDish == nil && o.Accompaniment == nil
}

// Complete reports whether all three courses are chosen.
func (o *Order) Complete() bool {
	return o.Entree != nil && o.SideDish != nil && o.Accompaniment != nil
}

func (o *Order) TaxRate() decimal.Decimal { return o.taxRate }

func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items() {
		sum = sum.Add(it.Price)
	}
	return sum
}

// Tax is the subtotal times the tax rate, rounded half away from zero to cents.
func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(o.taxRate).Round(2)
}

func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax())
}
